package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/biflab/internal/branch"
	"github.com/san-kum/biflab/internal/stability"
)

func testBranch() *branch.Branch {
	p2 := 2.5
	return &branch.Branch{
		Name:      "eq1",
		Type:      branch.FoldCurve,
		Parameter: "mu",
		Data: branch.Data{
			Points: []branch.Point{
				{State: []float64{0.1, 0.2}, ParamValue: 1.0, Stability: stability.Fold, Param2Value: &p2},
				{State: []float64{0.3, 0.4}, ParamValue: 1.1},
			},
			Bifurcations: []int{0},
			Indices:      []int{0, -1},
			Meta:         branch.FoldCurveMeta{Param1: "mu", Param2: "beta"},
		},
		Settings: branch.Settings{StepSize: 0.01, MaxSteps: 100},
	}
}

func TestSaveLoadBranch(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if err := s.Save("lorenz", testBranch()); err != nil {
		t.Fatal(err)
	}

	b, err := s.Load("lorenz", "eq1")
	if err != nil {
		t.Fatal(err)
	}

	if b.Type != branch.FoldCurve || b.Parameter != "mu" {
		t.Errorf("branch header not preserved: %s %s", b.Type, b.Parameter)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", b.Len())
	}
	if b.Data.Points[0].Stability != stability.Fold {
		t.Errorf("stability tag not preserved: %v", b.Data.Points[0].Stability)
	}
	if b.Data.Indices[1] != -1 {
		t.Errorf("signed indices not preserved: %v", b.Data.Indices)
	}

	meta, ok := b.Data.Meta.(branch.FoldCurveMeta)
	if !ok {
		t.Fatalf("expected FoldCurveMeta, got %T", b.Data.Meta)
	}
	if meta.Param1 != "mu" || meta.Param2 != "beta" {
		t.Errorf("curve parameters not preserved: %+v", meta)
	}

	if b.Data.Points[0].Param2Value == nil || *b.Data.Points[0].Param2Value != 2.5 {
		t.Error("param2 value not preserved")
	}
}

func TestLoadCycleMeta(t *testing.T) {
	s := New(t.TempDir())
	lc := &branch.Branch{
		Name:      "lc1",
		Type:      branch.LimitCycle,
		Parameter: "mu",
		Data: branch.Data{
			Points: []branch.Point{{State: make([]float64, 13), ParamValue: 0.5}},
			Meta:   branch.CycleMeta{Ntst: 3, Ncol: 2},
		},
	}
	if err := s.Save("vdp", lc); err != nil {
		t.Fatal(err)
	}

	b, err := s.Load("vdp", "lc1")
	if err != nil {
		t.Fatal(err)
	}
	meta, ok := b.Data.Meta.(branch.CycleMeta)
	if !ok {
		t.Fatalf("expected CycleMeta, got %T", b.Data.Meta)
	}
	if meta.Ntst != 3 || meta.Ncol != 2 {
		t.Errorf("mesh not preserved: %+v", meta)
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if infos, err := s.List(); err != nil || len(infos) != 0 {
		t.Fatalf("fresh store should list nothing: %v, %v", infos, err)
	}

	if err := s.Save("lorenz", testBranch()); err != nil {
		t.Fatal(err)
	}
	infos, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Fatalf("expected 1 branch, got %d", len(infos))
	}
	if infos[0].System != "lorenz" || infos[0].Name != "eq1" || infos[0].Points != 2 {
		t.Errorf("unexpected listing: %+v", infos[0])
	}
}

func TestList_SkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Save("lorenz", testBranch()); err != nil {
		t.Fatal(err)
	}
	junk := filepath.Join(dir, "systems", "lorenz", "branches", "notes.json")
	if err := os.WriteFile(junk, []byte(`{"type":"scribble"}`), 0644); err != nil {
		t.Fatal(err)
	}

	infos, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Errorf("non-continuation files must be skipped, got %d entries", len(infos))
	}
}

func TestSystemRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	sys := &branch.System{
		Name:       "lorenz",
		Kind:       branch.Flow,
		VarNames:   []string{"x", "y", "z"},
		ParamNames: []string{"sigma", "rho", "beta"},
		Params:     []float64{10, 28, 8.0 / 3.0},
	}
	if err := s.SaveSystem(sys); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadSystem("lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Dim() != 3 || loaded.Kind != branch.Flow {
		t.Errorf("system not preserved: %+v", loaded)
	}
	if loaded.Params[1] != 28 {
		t.Errorf("params not preserved: %v", loaded.Params)
	}
}
