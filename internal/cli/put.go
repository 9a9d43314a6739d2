package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put",
		Short: "Create a style",
		Long: "Create a style from flags, or from a JSON object piped via stdin. Flags override\n" +
			"the JSON. nameCn and definition are required; the category defaults to General.",
		Run: runPut,
	}

	cmd.Flags().String("name-cn", "", "Chinese name")
	cmd.Flags().String("name-en", "", "English or original name")
	cmd.Flags().StringP("category", "c", "", "Category: Architecture, Interior, General (or 建筑专属, 室内专属, 通用)")
	cmd.Flags().String("category-style", "", "Sub-category")
	cmd.Flags().String("definition", "", "One-sentence definition")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().String("cover", "", "Cover image URL")
	cmd.Flags().StringArray("image", nil, "Image URL (repeatable)")
	cmd.Flags().StringArray("set", nil, "Any field as key=value (repeatable)")

	RootCmd.AddCommand(cmd)
}

// stdinJSON returns piped stdin, or nil when stdin is a terminal or empty.
func stdinJSON() ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}
	return b, nil
}

// setPairs adds key=value assignments to p.
func setPairs(p *model.StylePatch, pairs []string) error {
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected key=value", kv)
		}
		if err := p.Set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}
	return nil
}

func runPut(cmd *cobra.Command, args []string) {
	var f model.StyleFields
	data, err := stdinJSON()
	if err != nil {
		exitErr("read stdin", err)
	}
	if data != nil {
		var p model.StylePatch
		if err := json.Unmarshal(data, &p); err != nil {
			exitErr("parse json", err)
		}
		p.Apply(&f)
	}

	var p model.StylePatch
	flagKeys := map[string]string{
		"name-cn":        "nameCn",
		"name-en":        "nameEn",
		"category":       "categoryType",
		"category-style": "categoryStyle",
		"definition":     "definition",
		"tags":           "tags",
		"cover":          "coverImage",
	}
	for name, key := range flagKeys {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetString(name)
		if err := p.Set(key, v); err != nil {
			exitErr("put", err)
		}
	}
	if images, _ := cmd.Flags().GetStringArray("image"); len(images) > 0 {
		p.SetImages(images)
	}
	pairs, _ := cmd.Flags().GetStringArray("set")
	if err := setPairs(&p, pairs); err != nil {
		exitErr("put", err)
	}
	p.Apply(&f)

	if f.CategoryType == "" {
		f.CategoryType = model.General
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		exitErr("put", err)
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Create(cmd.Context(), f)
	if err != nil {
		exitErr("put", err)
	}
	printJSON(cmd, rec)
}
