package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
	"github.com/ngmaloney/charter-terminal/internal/models"
	"github.com/ngmaloney/charter-terminal/internal/sheets"
)

func fixtureLoader(src *sheets.StaticSource) LoaderFunc {
	return func() *catalog.Loader { return catalog.NewLoader(src) }
}

func fixture() *sheets.StaticSource {
	return &sheets.StaticSource{
		BoatRows: [][]string{
			{"shipname", "url", "phonenumber", "address", "departure_port", "", "", "", "", "", "", "calendar_integration_status"},
			{"Seabird", "https://seabird.example", "090-0000-0000", "神奈川県三浦市三崎町", "三崎港", "", "", "", "", "", "", "active"},
			{"Kaiyo", "", "", "千葉県鴨川市", "鴨川港"},
		},
		ListingRows: [][]string{
			{"shipname", "date", "category", "status", "capacity", "note"},
			{"Seabird", "2026/3/8", "ジギング", "open", "3", ""},
			{"Kaiyo", "2026/3/8", "タイラバ", "full", "", ""},
			{"Kaiyo", "2026/3/10", "SLJ", "close", "", ""},
			{"Seabird", "2026/3/1", "ジギング", "open", "", ""},
		},
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTripsCmd(t *testing.T) {
	Now = func() time.Time { return time.Date(2026, 3, 5, 15, 0, 0, 0, time.Local) }
	defer func() { Now = time.Now }()

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "defaults",
			contains: []string{"2件のプランが見つかりました", "3月8日(日)", "Seabird", "残り3名", "神奈川県三浦市"},
			excludes: []string{"3月10日", "3月1日"},
		},
		{
			name:     "all statuses",
			args:     []string{"--status", "any"},
			contains: []string{"3件のプランが見つかりました", "3月10日(火)", "休船"},
		},
		{
			name:     "port filter",
			args:     []string{"--port", "鴨川港"},
			contains: []string{"1件のプランが見つかりました", "Kaiyo"},
			excludes: []string{"Seabird"},
		},
		{
			name:     "category filter",
			args:     []string{"--category", "タイラバ"},
			contains: []string{"1件のプランが見つかりました", "満船"},
		},
		{
			name:     "no matches",
			args:     []string{"--area", "北海道"},
			contains: []string{"条件に一致するプランがありません"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, TripsCmd(fixtureLoader(fixture())), tt.args...)
			if err != nil {
				t.Fatalf("trips error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestTripsCmd_UnknownStatus(t *testing.T) {
	_, err := run(t, TripsCmd(fixtureLoader(fixture())), "--status", "sold-out")
	if err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Errorf("error = %v, want unknown status", err)
	}
}

func TestTripsCmd_LoadError(t *testing.T) {
	src := fixture()
	src.ListingErr = errors.New("unpublished")

	_, err := run(t, TripsCmd(fixtureLoader(src)))
	if err == nil || !strings.Contains(err.Error(), "unpublished") {
		t.Errorf("error = %v, want load failure", err)
	}
}

func TestBoatsCmd(t *testing.T) {
	out, err := run(t, BoatsCmd(fixtureLoader(fixture())))
	if err != nil {
		t.Fatalf("boats error = %v", err)
	}

	for _, want := range []string{"2隻の遊漁船", "Seabird", "三崎港", "連携中", "Kaiyo", "未連携", "千葉県鴨川市"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseStatuses(t *testing.T) {
	tests := []struct {
		raw     []string
		want    []models.Status
		wantErr bool
	}{
		{[]string{"available", "FULL"}, []models.Status{models.StatusAvailable, models.StatusFull}, false},
		{[]string{"unspecified"}, []models.Status{models.StatusUnspecified}, false},
		{[]string{"full", "any"}, nil, false},
		{[]string{"open"}, nil, true},
	}

	for _, tt := range tests {
		got, err := parseStatuses(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseStatuses(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseStatuses(%v) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseStatuses(%v)[%d] = %v, want %v", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}
