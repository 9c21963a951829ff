package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path. Keys keep their struct order and
// sections are sorted so rewrites produce stable diffs.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type tomlSection struct {
	name  string
	lines []string
}

// sortTOMLSections reorders top-level tables by name. Lines before the
// first table stay first.
func sortTOMLSections(content string) string {
	var preamble []string
	var sections []tomlSection

	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, tomlSection{name: m[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].name < sections[j].name
	})

	blocks := make([]string, 0, len(sections)+1)
	if head := strings.TrimSpace(strings.Join(preamble, "\n")); head != "" {
		blocks = append(blocks, head)
	}
	for _, s := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(s.lines, "\n"), "\n "))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
