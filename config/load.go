package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// hclFile is the decoding schema. Pointer fields distinguish absent
// attributes from zero values.
type hclFile struct {
	Maze   *hclMaze   `hcl:"maze,block"`
	Search *hclSearch `hcl:"search,block"`
	Output *hclOutput `hcl:"output,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclMaze struct {
	Image        *string  `hcl:"image,optional"`
	Text         *string  `hcl:"text,optional"`
	TileSize     *int     `hcl:"tile_size,optional"`
	Connectivity *string  `hcl:"connectivity,optional"`
	Heuristic    *string  `hcl:"heuristic,optional"`
	AxisCost     *float64 `hcl:"axis_cost,optional"`
	DiagonalCost *float64 `hcl:"diagonal_cost,optional"`
}

type hclSearch struct {
	Algorithms    *[]string `hcl:"algorithms,optional"`
	MaxExpansions *int      `hcl:"max_expansions,optional"`
}

type hclOutput struct {
	Dir     *string `hcl:"dir,optional"`
	Console *bool   `hcl:"console,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the HCL file at path on top of Default. Relative input
// paths are resolved against the file's directory. The result is not
// validated; callers apply overrides first and then call Validate.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes HCL source on top of Default. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}

	cfg := Default()
	raw.apply(cfg)
	return cfg, nil
}

// EvalContext returns the variables and functions visible to attribute
// expressions.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environ(),
		},
		Functions: map[string]function.Function{
			"lower":    stdlib.LowerFunc,
			"upper":    stdlib.UpperFunc,
			"format":   stdlib.FormatFunc,
			"coalesce": stdlib.CoalesceFunc,
		},
	}
}

func environ() cty.Value {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

func (f *hclFile) apply(cfg *Config) {
	if m := f.Maze; m != nil {
		set(&cfg.Maze.Image, m.Image)
		set(&cfg.Maze.Text, m.Text)
		set(&cfg.Maze.TileSize, m.TileSize)
		set(&cfg.Maze.Connectivity, m.Connectivity)
		set(&cfg.Maze.Heuristic, m.Heuristic)
		set(&cfg.Maze.AxisCost, m.AxisCost)
		set(&cfg.Maze.DiagonalCost, m.DiagonalCost)
	}
	if s := f.Search; s != nil {
		set(&cfg.Search.Algorithms, s.Algorithms)
		set(&cfg.Search.MaxExpansions, s.MaxExpansions)
	}
	if o := f.Output; o != nil {
		set(&cfg.Output.Dir, o.Dir)
		set(&cfg.Output.Console, o.Console)
	}
	if l := f.Log; l != nil {
		set(&cfg.Log.Level, l.Level)
		set(&cfg.Log.Format, l.Format)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
