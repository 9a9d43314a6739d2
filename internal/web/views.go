package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/sheet"
	"github.com/rcliao/style-kb/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// viewError answers a failed view request. Missing records and bad input
// go back to the list with a message; storage failures are a 500.
func (s *Server) viewError(c *gin.Context, err error) {
	if httpStatus(err) == http.StatusInternalServerError {
		c.Error(err)
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	msg := err.Error()
	if errors.Is(err, store.ErrNotFound) {
		msg = "未找到该风格"
	}
	setFlash(c, "error", msg)
	c.Redirect(http.StatusFound, "/styles")
}

func (s *Server) listView(c *gin.Context) {
	params := store.FilterParams{Query: c.Query("q")}
	if v := c.Query("category"); v != "" {
		if cat, err := model.ParseCategory(v); err == nil {
			params.Category = cat
		}
	}

	records, err := s.styles.Search(c.Request.Context(), params)
	if err != nil {
		s.viewError(c, err)
		return
	}

	s.page(c, http.StatusOK, "list", &pageData{
		Title: "风格知识库",
		Data: map[string]any{
			"Records":    records,
			"Query":      params.Query,
			"Category":   params.Category,
			"Categories": model.Categories,
		},
	})
}

func (s *Server) formPage(c *gin.Context, status int, title, action string, f model.StyleFields, formErr error) {
	data := &pageData{
		Title: title,
		Data: map[string]any{
			"Action":     action,
			"Fields":     formFields(f),
			"Categories": model.Categories,
		},
	}
	if formErr != nil {
		data.Flashes = []flash{{Type: "error", Message: formErr.Error()}}
	}
	s.page(c, status, "form", data)
}

func (s *Server) newView(c *gin.Context) {
	s.formPage(c, http.StatusOK, "新建风格", "/styles", model.StyleFields{CategoryType: model.General}, nil)
}

func (s *Server) createView(c *gin.Context) {
	f, err := parseForm(c)
	if err != nil {
		s.formPage(c, http.StatusBadRequest, "新建风格", "/styles", f, err)
		return
	}

	rec, err := s.styles.Create(c.Request.Context(), f)
	if err != nil {
		s.viewError(c, err)
		return
	}
	redirectWithFlash(c, "/styles/"+rec.ID, "success", "已创建："+rec.NameCn)
}

func (s *Server) detailView(c *gin.Context) {
	rec, err := s.styles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.viewError(c, err)
		return
	}

	s.page(c, http.StatusOK, "detail", &pageData{
		Title: rec.NameCn,
		Data: map[string]any{
			"Record":   rec,
			"Sections": detailSections(rec),
		},
	})
}

func (s *Server) editView(c *gin.Context) {
	rec, err := s.styles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.viewError(c, err)
		return
	}
	s.formPage(c, http.StatusOK, "编辑："+rec.NameCn, "/styles/"+rec.ID, rec.StyleFields, nil)
}

func (s *Server) updateView(c *gin.Context) {
	id := c.Param("id")
	f, err := parseForm(c)
	if err != nil {
		s.formPage(c, http.StatusBadRequest, "编辑风格", "/styles/"+id, f, err)
		return
	}

	rec, err := s.styles.Update(c.Request.Context(), id, patchFromFields(f))
	if err != nil {
		s.viewError(c, err)
		return
	}
	redirectWithFlash(c, "/styles/"+rec.ID, "success", "已保存")
}

func (s *Server) deleteView(c *gin.Context) {
	if err := s.styles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.viewError(c, err)
		return
	}
	redirectWithFlash(c, "/styles", "success", "已删除")
}

// uploadedSheet imports the multipart "file" field.
func (s *Server) uploadedSheet(c *gin.Context) (*sheet.Result, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	header, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file: %v", errInvalid, err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open upload: %v", errInvalid, err)
	}
	defer f.Close()

	res, err := sheet.Import(c.Request.Context(), s.styles, f, header.Filename)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("file", header.Filename).Int("imported", res.Imported).
		Strs("ignored_columns", res.Ignored).Msg("spreadsheet imported")
	return res, nil
}

func (s *Server) importView(c *gin.Context) {
	res, err := s.uploadedSheet(c)
	if err != nil {
		if httpStatus(err) == http.StatusInternalServerError {
			s.viewError(c, err)
			return
		}
		redirectWithFlash(c, "/styles", "error", "导入失败："+err.Error())
		return
	}

	msg := fmt.Sprintf("成功导入 %d 条风格", res.Imported)
	if len(res.Ignored) > 0 {
		msg += "，已忽略列：" + strings.Join(res.Ignored, "、")
	}
	redirectWithFlash(c, "/styles", "success", msg)
}

func (s *Server) exportXLSX(c *gin.Context) {
	records, err := s.styles.GetAll(c.Request.Context())
	if err != nil {
		s.viewError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := sheet.Export(records, &buf); err != nil {
		s.viewError(c, err)
		return
	}

	name := fmt.Sprintf("style-kb-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
