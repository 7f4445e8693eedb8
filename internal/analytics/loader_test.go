package analytics

import (
	"context"
	"os"
	"testing"
)

func createTempCSV(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "orders*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}

func TestLoadFromCSV_ValidData(t *testing.T) {
	t.Chdir(t.TempDir())
	csv := exportHeader + `
2023-01-15,O1,NF1,Cliente Alfa,P01,Produto A,1,10,10
2023-01-15,O1,NF1,Cliente Alfa,P02,Produto B,1,20,20
2023-02-10,O2,NF2,Cliente Beta,P01,Produto A,1,10,10`

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("LoadFromCSV() failed: %v", err)
	}

	if got := a.rowsLoaded.Load(); got != 3 {
		t.Errorf("rowsLoaded = %d, want 3", got)
	}
	summary := a.Summary(Filter{})
	if summary.TotalValue != 40 {
		t.Errorf("TotalValue = %v, want 40", summary.TotalValue)
	}
	if summary.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", summary.OrderCount)
	}
}

func TestLoadFromCSV_SchemaError(t *testing.T) {
	t.Chdir(t.TempDir())
	// Header without the Total column.
	csv := "Data,ID,NF,Cliente,Produto ID,Produto,Quantidade,Preço R$\n2023-01-15,O1,NF1,C,P01,Produto A,1,10"

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	a := NewAnalytics()
	err := a.LoadFromCSV(context.Background(), f)
	if err == nil {
		t.Fatal("expected schema error")
	}
	if len(a.lines()) != 0 {
		t.Error("schema error must not leave a partial snapshot")
	}
}

func TestLoadFromCSV_InvalidData(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr bool
	}{
		{
			name:    "empty file",
			csv:     "",
			wantErr: true,
		},
		{
			name:    "header only",
			csv:     exportHeader,
			wantErr: true,
		},
		{
			name:    "all rows malformed",
			csv:     exportHeader + "\n2023-01-15,O1,NF1,C,P01,Produto A,abc,10,10",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			f := createTempCSV(t, tt.csv)
			defer os.Remove(f)

			a := NewAnalytics()
			err := a.LoadFromCSV(context.Background(), f)

			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFromCSV() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromCSV_SkipsMalformedRows(t *testing.T) {
	t.Chdir(t.TempDir())
	csv := exportHeader + `
2023-01-15,O1,NF1,Cliente Alfa,P01,Produto A,1,10,10
2023-01-15,O1,NF1,Cliente Alfa,P02,Produto B,oops,20,20
2023-02-10,O2,NF2,Cliente Beta,P01,Produto A,1,10,10`

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("LoadFromCSV() failed: %v", err)
	}
	if got := a.rowsLoaded.Load(); got != 2 {
		t.Errorf("rowsLoaded = %d, want 2", got)
	}
	if got := a.rowsSkipped.Load(); got != 1 {
		t.Errorf("rowsSkipped = %d, want 1", got)
	}
}

func TestLoadFromCSV_BadDateRowsRetained(t *testing.T) {
	t.Chdir(t.TempDir())
	csv := exportHeader + `
not-a-date,O1,NF1,Cliente Alfa,P01,Produto A,1,10,10
2023-02-10,O2,NF2,Cliente Beta,P01,Produto A,1,10,10`

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("LoadFromCSV() failed: %v", err)
	}

	// Both rows load; only the dated one reaches the time series.
	if got := a.rowsLoaded.Load(); got != 2 {
		t.Errorf("rowsLoaded = %d, want 2", got)
	}
	if summary := a.Summary(Filter{}); summary.TotalValue != 20 {
		t.Errorf("TotalValue = %v, want 20", summary.TotalValue)
	}
	if daily := a.Daily(Filter{}); len(daily) != 1 {
		t.Errorf("daily buckets = %d, want 1", len(daily))
	}
}

func TestLoadFromCSV_CacheRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	csv := exportHeader + `
2023-01-15,O1,NF1,Cliente Alfa,P01,Produto A,1,10,10`

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	first := NewAnalytics()
	if err := first.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("first load failed: %v", err)
	}

	second := NewAnalytics()
	if err := second.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if got, want := second.Summary(Filter{}), first.Summary(Filter{}); got != want {
		t.Errorf("cached load summary = %+v, want %+v", got, want)
	}
}

func TestLoadFromCSV_Cancelled(t *testing.T) {
	t.Chdir(t.TempDir())
	csv := exportHeader + `
2023-01-15,O1,NF1,Cliente Alfa,P01,Produto A,1,10,10`

	f := createTempCSV(t, csv)
	defer os.Remove(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalytics()
	if err := a.LoadFromCSV(ctx, f); err == nil {
		t.Error("expected error from cancelled context")
	}
}
