package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.End()

	child := timer.Child("child")
	child.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	if buf.Len() != 0 {
		t.Errorf("no-op collector should produce no output, got: %s", buf.String())
	}
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())

	if collector == nil {
		t.Fatal("FromContext should never return nil")
	}
	if _, ok := collector.(noOpCollector); !ok {
		t.Errorf("FromContext should return noOpCollector when none present, got: %T", collector)
	}
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	if !ok || retrieved != collector {
		t.Error("FromContext should return the same collector that was added")
	}
}

func TestTimingCollectorBasic(t *testing.T) {
	collector := NewTimingCollector()

	timer := collector.Start("load journal")
	time.Sleep(10 * time.Millisecond)
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	output := buf.String()
	if !strings.Contains(output, "load journal") {
		t.Errorf("output should contain operation name, got: %s", output)
	}
	if !strings.Contains(output, "ms") {
		t.Errorf("output should contain duration, got: %s", output)
	}
}

func TestTimingCollectorHierarchical(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("total")
	child := root.Child("parse")
	child.End()

	// Timers started while another runs nest under it.
	sibling := collector.Start("report")
	sibling.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	output := buf.String()
	if !strings.HasPrefix(output, "total:") {
		t.Errorf("root should lead the report, got: %s", output)
	}
	for _, name := range []string{"parse", "report"} {
		if !strings.Contains(output, name) {
			t.Errorf("output should contain %q, got: %s", name, output)
		}
	}
	if !strings.Contains(output, "├─") && !strings.Contains(output, "└─") {
		t.Errorf("children should be rendered as tree branches, got: %s", output)
	}
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	if buf.Len() != 0 {
		t.Errorf("collector with no timers should produce no output, got: %s", buf.String())
	}
}
