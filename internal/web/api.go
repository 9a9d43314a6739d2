package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/store"
)

func (s *Server) apiList(c *gin.Context) {
	params := store.FilterParams{Query: c.Query("q")}
	if v := c.Query("category"); v != "" {
		cat, err := model.ParseCategory(v)
		if err != nil {
			httpError(c, err)
			return
		}
		params.Category = cat
	}

	records, err := s.styles.Search(c.Request.Context(), params)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) apiGet(c *gin.Context) {
	rec, err := s.styles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) apiCreate(c *gin.Context) {
	var f model.StyleFields
	if err := c.ShouldBindJSON(&f); err != nil {
		httpError(c, fmt.Errorf("%w: %v", errInvalid, err))
		return
	}
	if f.CategoryType == "" {
		f.CategoryType = model.General
	} else if !f.CategoryType.Valid() {
		cat, err := model.ParseCategory(string(f.CategoryType))
		if err != nil {
			httpError(c, err)
			return
		}
		f.CategoryType = cat
	}
	f.Tags = model.CleanList(f.Tags)
	f.Images = model.CleanList(f.Images)
	if err := f.Validate(); err != nil {
		httpError(c, fmt.Errorf("%w: %w", errInvalid, err))
		return
	}

	rec, err := s.styles.Create(c.Request.Context(), f)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) apiUpdate(c *gin.Context) {
	var p model.StylePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		httpError(c, fmt.Errorf("%w: %w", errInvalid, err))
		return
	}

	rec, err := s.styles.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) apiDelete(c *gin.Context) {
	if err := s.styles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// apiImport takes a JSON array of raw rows keyed by internal field keys.
func (s *Server) apiImport(c *gin.Context) {
	var rows []store.RawRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		httpError(c, fmt.Errorf("%w: %v", errInvalid, err))
		return
	}
	if len(rows) == 0 {
		httpError(c, fmt.Errorf("%w: no rows", errInvalid))
		return
	}

	n, err := s.styles.ImportBatch(c.Request.Context(), rows)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}

func (s *Server) apiUpload(c *gin.Context) {
	res, err := s.uploadedSheet(c)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) apiStats(c *gin.Context) {
	st, err := s.styles.Stats(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) apiTags(c *gin.Context) {
	tags, err := s.styles.Tags(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
