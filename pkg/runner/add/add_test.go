package add

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/weekly/pkg/testutil"
	"tableflip.dev/weekly/pkg/todo"
)

func init() {
	color.NoColor = true
}

func TestAdd(t *testing.T) {
	remote := testutil.NewFakeRemote()
	var buf bytes.Buffer
	a := Add{Day: todo.Jumat, Text: "bayar listrik", Remote: remote, Out: &buf}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	tasks := remote.Tasks()
	if len(tasks) != 1 || tasks[0].Day != todo.Jumat || tasks[0].Completed {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if !strings.Contains(buf.String(), "Jumat - 1") || !strings.Contains(buf.String(), "bayar listrik") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestAddRejectsBlank(t *testing.T) {
	remote := testutil.NewFakeRemote()
	for _, a := range []Add{
		{Day: todo.Senin, Text: "  ", Remote: remote},
		{Day: "", Text: "x", Remote: remote},
	} {
		if err := a.Do(context.Background()); err == nil {
			t.Fatalf("expected error for %+v", a)
		}
	}
	if remote.Calls() != 0 {
		t.Fatalf("expected no remote calls, got %d", remote.Calls())
	}
}
