package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/specmarker/internal/config"
	"github.com/taigrr/specmarker/internal/grouper"
	"gopkg.in/yaml.v3"
)

func writeFolders(w io.Writer, folders []string, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, folders)
	case config.FormatYAML:
		return writeYAML(w, folders)
	}

	for _, folder := range folders {
		if _, err := fmt.Fprintln(w, folder); err != nil {
			return err
		}
	}
	return nil
}

func writeGroups(w io.Writer, result *grouper.Result, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, result)
	case config.FormatYAML:
		return writeYAML(w, result)
	}

	r := lipgloss.NewRenderer(w)
	folderStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	fileStyle := r.NewStyle().Foreground(lipgloss.Color("245"))

	var sb strings.Builder
	for _, folder := range result.Keys() {
		sb.WriteString(folderStyle.Render(folder))
		sb.WriteString("\n")
		for _, file := range result.Files(folder) {
			sb.WriteString("  ")
			sb.WriteString(fileStyle.Render(file))
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
