package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seenimoa/finscope/internal/benchmark"
	"github.com/seenimoa/finscope/internal/config"
	"github.com/seenimoa/finscope/internal/engine"
	"github.com/seenimoa/finscope/internal/store"
	"github.com/seenimoa/finscope/pkg/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			Workers:          2,
			TopK:             3,
			Tiers:            config.TiersConfig{Excellent: 25, VeryGood: 10, Good: -10, Acceptable: -25},
			EqualTolerance:   1,
			ComparisonLevels: []string{"local", "regional", "global"},
			Language:         "en",
		},
		Store: config.StoreConfig{Driver: "memory"},
	}
}

const retailTable = `
sector: retail
legal_entity: llc
level: local
analyses:
  ratio.current: {average: 1.2, distribution: [0.8, 1.0, 1.4, 2.0]}
`

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, c := range []*cobra.Command{analyzeCmd, catalogCmd, benchmarkResolveCmd} {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				if sv, ok := f.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = f.Value.Set(f.DefValue)
				}
				f.Changed = false
			})
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ── Input decoding ──

func TestDecodeInputObject(t *testing.T) {
	in, err := decodeInput([]byte(`{
		"sector": "retail",
		"years_count": 2,
		"statements": [{"company": "ACME", "fiscal_year": 2024, "kind": "balance_sheet", "items": {"cash": 10}}]
	}`))
	if err != nil {
		t.Fatalf("decodeInput: %v", err)
	}
	if in.Sector != "retail" || in.YearsCount != 2 {
		t.Errorf("options: got %+v", in.RunOptions)
	}
	if len(in.Statements) != 1 || in.Statements[0].FiscalYear != 2024 {
		t.Errorf("statements: got %+v", in.Statements)
	}
}

func TestDecodeInputArray(t *testing.T) {
	in, err := decodeInput([]byte(`  [{"company": "ACME", "fiscal_year": 2023, "kind": "income_statement", "items": {}}]`))
	if err != nil {
		t.Fatalf("decodeInput: %v", err)
	}
	if len(in.Statements) != 1 || in.Sector != "" {
		t.Errorf("got %+v", in)
	}
}

func TestDecodeInputInvalid(t *testing.T) {
	if _, err := decodeInput([]byte(`{"statements": 3}`)); err == nil {
		t.Error("expected error for malformed statements")
	}
}

// ── Wiring ──

func TestPolicyFromConfig(t *testing.T) {
	p := policyFromConfig(testConfig())
	if p.ExcellentAt != 25 || p.VeryGoodAt != 10 || p.GoodAt != -10 || p.AcceptableAt != -25 || p.EqualTolerance != 1 {
		t.Errorf("policy: got %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default config policy should validate: %v", err)
	}
}

func TestBuildResolverWithoutDirFallsBack(t *testing.T) {
	r, err := buildResolver(testConfig())
	if err != nil {
		t.Fatalf("buildResolver: %v", err)
	}
	set, err := r.Resolve(context.Background(), benchmark.Key{Sector: "retail", Level: "local"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if set.Source != benchmark.StageDefault {
		t.Errorf("Source: got %s, want default", set.Source)
	}
}

func TestBuildResolverFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "retail.yaml", retailTable)

	cfg := testConfig()
	cfg.Benchmarks.Dir = dir
	cfg.Benchmarks.CacheTTL = 60

	r, err := buildResolver(cfg)
	if err != nil {
		t.Fatalf("buildResolver: %v", err)
	}
	set, err := r.Resolve(context.Background(), benchmark.Key{Sector: "Retail", LegalEntity: "LLC", Level: "local"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if set.Source != benchmark.StageExact || set.LowConfidence {
		t.Errorf("expected exact match, got %s (low=%v)", set.Source, set.LowConfidence)
	}
}

func TestBuildResolverBadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "analyses: {}")
	cfg := testConfig()
	cfg.Benchmarks.Dir = dir
	if _, err := buildResolver(cfg); err == nil {
		t.Error("expected error for an invalid table")
	}
}

func TestBuildStore(t *testing.T) {
	st, err := buildStore(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Errorf("expected MemoryStore, got %T", st)
	}

	cfg := testConfig()
	cfg.Store.Driver = "sqlite"
	if _, err := buildStore(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestBuildEngineUsesSink(t *testing.T) {
	st := store.NewMemoryStore()
	eng, err := buildEngine(testConfig(), st)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	stmts := []models.FinancialStatement{{
		Company: "ACME", FiscalYear: 2024, Kind: models.BalanceSheet,
		Items: models.ItemsOf(map[string]float64{models.KeyCurrentAssets: 150, models.KeyCurrentLiabilities: 100}),
	}}
	report, err := eng.Run(context.Background(), stmts, engine.RunOptions{Sector: "retail", Analyses: []string{"ratio.current"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := st.LoadReport(context.Background(), report.Meta.RunID); err != nil {
		t.Errorf("report not saved: %v", err)
	}
}

func TestBuildEngineRejectsBadTiers(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.Tiers.Good = 50
	if _, err := buildEngine(cfg, nil); err == nil {
		t.Error("expected error for out-of-order tiers")
	}
}

// ── Commands ──

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "finscope dev") {
		t.Errorf("output: %q", out)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "--category", "cash_flow")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if strings.Contains(out, "ratio.current") {
		t.Error("cash_flow listing should not include classical ratios")
	}
	if !strings.Contains(out, "analyses") {
		t.Errorf("missing count line: %q", out)
	}

	out, err = execute(t, "catalog", "ratio.current")
	if err != nil {
		t.Fatalf("catalog ratio.current: %v", err)
	}
	if !strings.Contains(out, "current_assets") {
		t.Errorf("inputs missing from %q", out)
	}

	if _, err := execute(t, "catalog", "ratio.nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestAnalyzeCommandJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "acme.json", `{
		"sector": "retail",
		"statements": [
			{"company": "ACME", "fiscal_year": 2023, "kind": "balance_sheet", "items": {"current_assets": 140, "current_liabilities": 100}},
			{"company": "ACME", "fiscal_year": 2024, "kind": "balance_sheet", "items": {"current_assets": 150, "current_liabilities": 100}}
		]
	}`)

	out, err := execute(t, "analyze", input, "--format", "json", "--analyses", "ratio.current,ratio.quick")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if report.Meta.Attempted != 2 || report.Meta.Company != "ACME" {
		t.Errorf("meta: got %+v", report.Meta)
	}
	if report.Meta.ComparisonLevel != "local" {
		t.Errorf("ComparisonLevel: got %q, want the first configured level", report.Meta.ComparisonLevel)
	}
}

func TestAnalyzeCommandText(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "acme.json", `[
		{"company": "ACME", "fiscal_year": 2024, "kind": "balance_sheet", "items": {"current_assets": 150, "current_liabilities": 100}}
	]`)

	out, err := execute(t, "analyze", input, "--sector", "retail", "--analyses", "ratio.current")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"ACME", "1 attempted", "ANALYSIS"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeCommandStructuralError(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "empty.json", `{"sector": "retail", "statements": []}`)
	if _, err := execute(t, "analyze", input); err == nil {
		t.Error("expected structural error for empty statements")
	}
}

func TestBenchmarkResolveCommand(t *testing.T) {
	out, err := execute(t, "benchmark", "resolve", "Retail")
	if err != nil {
		t.Fatalf("benchmark resolve: %v", err)
	}
	if !strings.Contains(out, "stage:          default") {
		t.Errorf("output: %q", out)
	}
}

func TestBenchmarkResolveEntriesMarksDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "retail.yaml", retailTable)
	t.Setenv("FINSCOPE_BENCHMARKS_DIR", dir)

	out, err := execute(t, "benchmark", "resolve", "retail", "--legal-entity", "llc", "--level", "local", "--entries")
	if err != nil {
		t.Fatalf("benchmark resolve: %v", err)
	}
	if !strings.Contains(out, "stage:          exact") {
		t.Errorf("output: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "ratio.current":
			if !strings.HasSuffix(line, "table") {
				t.Errorf("ratio.current: %q", line)
			}
		case "ratio.debt":
			if !strings.HasSuffix(line, "default") {
				t.Errorf("ratio.debt: %q", line)
			}
		}
	}
}
