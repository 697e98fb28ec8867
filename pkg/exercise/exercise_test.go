package exercise

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/Veraticus/regexlab/pkg/config"
	"github.com/Veraticus/regexlab/pkg/page"
	"github.com/Veraticus/regexlab/pkg/pattern"
	"github.com/Veraticus/regexlab/pkg/testutil"
)

func compiledConfig(t *testing.T, kind pattern.EngineKind) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Engine = kind
	if err := cfg.Compile(); err != nil {
		t.Fatalf("failed to compile default config: %v", err)
	}
	return cfg
}

func forEachEngine(t *testing.T, fn func(t *testing.T, cfg *config.Config)) {
	t.Helper()
	for _, kind := range []pattern.EngineKind{pattern.EngineECMA, pattern.EngineRE2} {
		t.Run(string(kind), func(t *testing.T) {
			fn(t, compiledConfig(t, kind))
		})
	}
}

func loadPage(t *testing.T, name string) *page.Document {
	t.Helper()
	doc, err := page.Load(name)
	if err != nil {
		t.Fatalf("failed to load page %q: %v", name, err)
	}
	return doc
}

func items(t *testing.T, doc *page.Document, selector string) []string {
	t.Helper()
	el, err := doc.QuerySelector(selector)
	if err != nil {
		t.Fatalf("QuerySelector(%q) error = %v", selector, err)
	}
	return el.Items()
}

func TestAll_Order(t *testing.T) {
	exercises := All(compiledConfig(t, pattern.EngineECMA), nil)

	var names []string
	for _, ex := range exercises {
		names = append(names, ex.Name())
		if _, err := page.Load(ex.Page()); err != nil {
			t.Errorf("exercise %s has no page: %v", ex.Name(), err)
		}
		if ex.Description() == "" {
			t.Errorf("exercise %s has no description", ex.Name())
		}
	}

	want := []string{"getting-started", "area-code", "phone", "weekday", "names"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("exercise order mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	exercises := All(compiledConfig(t, pattern.EngineECMA), zap.NewNop())

	ex, err := Find(exercises, "weekday")
	if err != nil || ex.Name() != "weekday" {
		t.Fatalf("Find(weekday) = %v, %v", ex, err)
	}

	_, err = Find(exercises, "nope")
	if err == nil || !strings.Contains(err.Error(), "area-code") {
		t.Errorf("expected error listing available exercises, got %v", err)
	}
}

func TestListItems(t *testing.T) {
	got := ListItems([]string{"Dale Jensen", "<b>x</b>"})
	want := "<li>Dale Jensen</li><li>&lt;b&gt;x&lt;/b&gt;</li>"
	if got != want {
		t.Errorf("ListItems() = %q, want %q", got, want)
	}
	if ListItems(nil) != "" {
		t.Error("expected empty markup for no items")
	}
}

func TestFilter(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		got := Filter(cfg.AreaCode.Numbers, cfg.AreaCode.Pattern.CompiledRegex())
		want := []string{
			"801-766-9754",
			"801-545-5454",
			"801-796-8010",
			"801-009-0909",
			"801-777-6655",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFilter_GlobalPatternIsStateless(t *testing.T) {
	re := pattern.MustCompile(`801-...-....`, "g", pattern.EngineECMA)
	got := Filter([]string{"801-766-9754", "801-545-5454", "801-796-8010"}, re)
	if len(got) != 3 {
		t.Errorf("expected all 3 numbers kept, got %v", got)
	}
}

func TestAreaCode_Run(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		doc := loadPage(t, "area-code")
		ex := NewAreaCode(cfg.AreaCode, zap.NewNop())

		if err := ex.Run(context.Background(), doc, nil); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if diff := cmp.Diff(cfg.AreaCode.Numbers, items(t, doc, "#all-numbers")); diff != "" {
			t.Errorf("all numbers mismatch (-want +got):\n%s", diff)
		}
		filtered := items(t, doc, "#filtered-numbers")
		if len(filtered) != 5 {
			t.Errorf("expected 5 filtered numbers, got %v", filtered)
		}
		for _, n := range filtered {
			if !strings.HasPrefix(n, "801-") {
				t.Errorf("unexpected number %q in filtered list", n)
			}
		}
	})
}

func TestAreaCode_RunPageError(t *testing.T) {
	rec := testutil.NewRecordingPage()
	boom := errors.New("boom")
	rec.SetError(boom)

	ex := NewAreaCode(compiledConfig(t, pattern.EngineECMA).AreaCode, zap.NewNop())
	if err := ex.Run(context.Background(), rec, nil); !errors.Is(err, boom) {
		t.Errorf("expected page error to propagate, got %v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, ex := range All(compiledConfig(t, pattern.EngineECMA), nil) {
		rec := testutil.NewRecordingPage()
		if err := ex.Run(ctx, rec, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", ex.Name(), err)
		}
		if len(rec.Writes()) != 0 {
			t.Errorf("%s: wrote to page after cancellation", ex.Name())
		}
	}
}

func TestReorder(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		re := cfg.Names.Pattern.CompiledRegex()
		names := append([]string{"nobody"}, cfg.Names.Names...)

		want := []string{
			"Dale Jensen",
			"Andrea Smith",
			"Michael Jorgensen",
			"Annika Vasefi",
			"Monica Lopez",
			"Steven Crockett",
		}
		if diff := cmp.Diff(want, Reorder(names, re)); diff != "" {
			t.Errorf("Reorder mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, ReorderReplace(names, re)); diff != "" {
			t.Errorf("ReorderReplace mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReorder_Single(t *testing.T) {
	re := pattern.MustCompile(`(\w+), (\w+)`, "", pattern.EngineECMA)
	if got := Reorder([]string{"Jensen, Dale"}, re); len(got) != 1 || got[0] != "Dale Jensen" {
		t.Errorf("Reorder(Jensen, Dale) = %v", got)
	}
	if got := Reorder(nil, re); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestNames_Run(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	doc := loadPage(t, "names")

	if err := NewNames(cfg.Names, zap.NewNop()).Run(context.Background(), doc, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if diff := cmp.Diff(cfg.Names.Names, items(t, doc, "#last")); diff != "" {
		t.Errorf("last-first list mismatch (-want +got):\n%s", diff)
	}
	first := items(t, doc, "#first")
	if len(first) != 6 || first[0] != "Dale Jensen" || first[5] != "Steven Crockett" {
		t.Errorf("unexpected first-last list %v", first)
	}
}

func TestWeekday_Run(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		rec := testutil.NewRecordingPage()
		var console bytes.Buffer

		ex := NewWeekday(cfg.Weekday, zap.NewNop())
		if err := ex.Run(context.Background(), rec, &console); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		want := "The quarterly review moved from Monday to Monday, so the team will prepare on Monday and present on Monday."
		if got, _ := rec.Last("text", "#monday"); got != want {
			t.Errorf("#monday = %q, want %q", got, want)
		}
		if got, _ := rec.Last("text", "#original"); got != cfg.Weekday.Text {
			t.Errorf("#original = %q, want original text", got)
		}
		if strings.TrimSpace(console.String()) != want {
			t.Errorf("console = %q", console.String())
		}
	})
}

func TestWeekday_AllDays(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	cfg.Weekday.Text = "monday TUESDAY Wednesday Thursday Friday Saturday Sunday Holiday"

	got := NewWeekday(cfg.Weekday, zap.NewNop()).Replaced()
	want := "Monday Monday Monday Monday Monday Monday Monday Holiday"
	if got != want {
		t.Errorf("Replaced() = %q, want %q", got, want)
	}
}

func TestWeekday_NoMatchIsNoop(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	cfg.Weekday.Text = "Nothing scheduled."

	if got := NewWeekday(cfg.Weekday, zap.NewNop()).Replaced(); got != "Nothing scheduled." {
		t.Errorf("Replaced() = %q", got)
	}
}

func TestPhoneValidator_Validate(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		v := NewPhoneValidator(cfg.Phone, zap.NewNop())

		tests := []struct {
			input string
			want  bool
		}{
			{"801-766-9754", true},
			{"(801)766-9754", true},
			{"(801)-766-9754", true},
			{"801.766.9754", true},
			{"8017669754", true},
			{"80176", false},
			{"", false},
			{"801-766-975", false},
			{"abc-def-ghij", false},
		}
		for _, tt := range tests {
			if got := v.Validate(tt.input); got != tt.want {
				t.Errorf("Validate(%q) = %t, want %t", tt.input, got, tt.want)
			}
		}
	})
}

func TestPhoneValidator_HandleInput(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	doc := loadPage(t, "phone")
	field, err := doc.QuerySelector("#phone")
	if err != nil {
		t.Fatal(err)
	}

	v := NewPhoneValidator(cfg.Phone, zap.NewNop())
	if err := v.HandleInput("801"); err != nil {
		t.Fatalf("HandleInput without page error = %v", err)
	}

	v.Attach(doc)

	typed := "801-766-9754"
	for i := 1; i <= len(typed); i++ {
		if err := v.HandleInput(typed[:i]); err != nil {
			t.Fatalf("HandleInput(%q) error = %v", typed[:i], err)
		}
		want := "red"
		if i == len(typed) {
			want = "green"
		}
		if field.ClassName() != want {
			t.Errorf("after %q class = %q, want %q", typed[:i], field.ClassName(), want)
		}
	}
}

func TestPhoneValidator_Run(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	rec := testutil.NewRecordingPage()
	var console bytes.Buffer

	if err := NewPhoneValidator(cfg.Phone, zap.NewNop()).Run(context.Background(), rec, &console); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if class, _ := rec.Last("class", "#phone"); class != "red" {
		t.Errorf("expected empty field to be red, got %q", class)
	}

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	if len(lines) != len(cfg.Phone.Samples) {
		t.Fatalf("expected %d sample lines, got %d", len(cfg.Phone.Samples), len(lines))
	}
	if !strings.HasSuffix(lines[0], "green") || !strings.HasSuffix(lines[len(lines)-1], "red") {
		t.Errorf("unexpected sample output:\n%s", console.String())
	}
}

func TestGettingStarted_Lines(t *testing.T) {
	forEachEngine(t, func(t *testing.T, cfg *config.Config) {
		ex := NewGettingStarted(cfg.GettingStarted, zap.NewNop())

		want := []string{
			`test /hello/: true`,
			`test /world/: true`,
			`exec /hello/: ["hello"] index=41`,
			`match /hello/: ["hello"]`,
			`search /hello/: 41`,
			`replace /hello/ with "hi": Programming courses alwayS starts with a hi world example.`,
			`split /hello/: ["Programming courses alwayS starts with a " " world example."]`,
			`split /\s/: ["Programming" "courses" "alwayS" "starts" "with" "a" "hello" "world" "example."]`,
			`match /s\s/gi: ["s " "S " "s "]`,
			`exec /s\s/gi: ["s "] index=18`,
			`exec /s\s/gi: ["S "] index=25`,
			`found hello "hello" at 41`,
			`found world "world" at 47`,
			`found trailing-s "s " at 18`,
			`found trailing-s "S " at 25`,
			`found trailing-s "s " at 32`,
		}
		if diff := cmp.Diff(want, ex.Lines()); diff != "" {
			t.Errorf("Lines mismatch (-want +got):\n%s", diff)
		}

		// Running twice gives the same output since the cursor is reset.
		if diff := cmp.Diff(want, ex.Lines()); diff != "" {
			t.Errorf("second run mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGettingStarted_Run(t *testing.T) {
	cfg := compiledConfig(t, pattern.EngineECMA)
	doc := loadPage(t, "getting-started")
	var console bytes.Buffer

	ex := NewGettingStarted(cfg.GettingStarted, zap.NewNop())
	if err := ex.Run(context.Background(), doc, &console); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	el, _ := doc.QuerySelector("#console")
	if el.InnerText() != strings.TrimSuffix(console.String(), "\n") {
		t.Error("page console does not mirror printed output")
	}
	subject, _ := doc.QuerySelector("#subject")
	if subject.InnerText() != cfg.GettingStarted.Text {
		t.Errorf("#subject = %q", subject.InnerText())
	}
}
