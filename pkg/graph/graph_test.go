package graph

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/troubleduxj/flowlayout/pkg/layout"
)

func sampleDiagram() Diagram {
	return Diagram{
		Nodes: []Node{
			{ID: "trigger", Type: "webhook", Label: "Incoming webhook"},
			{ID: "transform", Type: "script", Width: 200, Height: 80},
			{ID: "notify", Type: "email", Meta: map[string]any{"channel": "ops"}},
		},
		Connections: []Connection{
			{From: "trigger", To: "transform"},
			{From: "transform", To: "notify"},
		},
	}
}

func TestDiagramRoundTrip(t *testing.T) {
	original := sampleDiagram()

	data, err := MarshalDiagram(original)
	if err != nil {
		t.Fatalf("MarshalDiagram() error = %v", err)
	}
	decoded, err := UnmarshalDiagram(data)
	if err != nil {
		t.Fatalf("UnmarshalDiagram() error = %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip changed diagram:\ngot  %+v\nwant %+v", decoded, original)
	}
}

func TestDiagramPreservesOrder(t *testing.T) {
	d := Diagram{Nodes: []Node{{ID: "z"}, {ID: "a"}, {ID: "m"}}}

	data, err := MarshalDiagram(d)
	if err != nil {
		t.Fatalf("MarshalDiagram() error = %v", err)
	}

	// Input order is meaningful to the engine, so serialization must not sort.
	text := string(data)
	if !(strings.Index(text, `"z"`) < strings.Index(text, `"a"`) && strings.Index(text, `"a"`) < strings.Index(text, `"m"`)) {
		t.Errorf("MarshalDiagram() reordered nodes:\n%s", text)
	}
}

func TestReadDiagramRejectsMalformedJSON(t *testing.T) {
	if _, err := ReadDiagram(strings.NewReader(`{"nodes": [`)); err == nil {
		t.Error("ReadDiagram() with truncated JSON should fail")
	}
}

func TestDiagramFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/flow.json"
	original := sampleDiagram()

	if err := WriteDiagramFile(original, path); err != nil {
		t.Fatalf("WriteDiagramFile() error = %v", err)
	}
	decoded, err := ReadDiagramFile(path)
	if err != nil {
		t.Fatalf("ReadDiagramFile() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("file round trip changed diagram:\ngot  %+v\nwant %+v", decoded, original)
	}
}

func TestToLayoutConversion(t *testing.T) {
	nodes, connections := sampleDiagram().ToLayout()

	if len(nodes) != 3 || len(connections) != 2 {
		t.Fatalf("ToLayout() = %d nodes, %d connections, want 3 and 2", len(nodes), len(connections))
	}
	if nodes[1].Size != (layout.Size{Width: 200, Height: 80}) {
		t.Errorf("ToLayout() size = %+v, want the diagram's dimensions", nodes[1].Size)
	}
	if connections[0] != (layout.Connection{From: "trigger", To: "transform"}) {
		t.Errorf("ToLayout() connection = %+v", connections[0])
	}
}

func TestApplyResultUpdatesCoordinates(t *testing.T) {
	d := sampleDiagram()
	nodes, connections := d.ToLayout()

	result, err := layout.New(nil).Layout(context.Background(), nodes, connections, layout.Config{})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	updated := d.ApplyResult(result)

	// Coordinates change, everything else survives.
	for i, n := range updated.Nodes {
		if n.ID != d.Nodes[i].ID || n.Label != d.Nodes[i].Label || n.Type != d.Nodes[i].Type {
			t.Errorf("ApplyResult() changed node identity at %d: %+v", i, n)
		}
	}
	if updated.Nodes[0].X == 0 && updated.Nodes[0].Y == 0 {
		t.Error("ApplyResult() left the first node at the origin")
	}
	if d.Nodes[0].X != 0 || d.Nodes[0].Y != 0 {
		t.Error("ApplyResult() mutated the original diagram")
	}
}

func TestWriteDiagramToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDiagram(sampleDiagram(), &buf); err != nil {
		t.Fatalf("WriteDiagram() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"trigger"`) {
		t.Errorf("WriteDiagram() output missing node id:\n%s", buf.String())
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	nodes, connections := sampleDiagram().ToLayout()
	result, err := layout.New(nil).Layout(context.Background(), nodes, connections, layout.Config{})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	doc := FromResult(result)
	if doc.Algorithm != result.Algorithm.String() {
		t.Errorf("FromResult() algorithm = %q, want %q", doc.Algorithm, result.Algorithm.String())
	}
	if doc.Width != result.Bounds.Width() || doc.Height != result.Bounds.Height() {
		t.Errorf("FromResult() dimensions = %v x %v, want %v x %v",
			doc.Width, doc.Height, result.Bounds.Width(), result.Bounds.Height())
	}

	data, err := MarshalLayout(doc)
	if err != nil {
		t.Fatalf("MarshalLayout() error = %v", err)
	}
	decoded, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, doc) {
		t.Errorf("layout round trip changed document:\ngot  %+v\nwant %+v", decoded, doc)
	}
}

func TestUnmarshalLayoutRequiresAlgorithm(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"nodes": []}`)); err == nil {
		t.Error("UnmarshalLayout() without algorithm should fail")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/flow.layout.json"
	doc := Layout{
		Algorithm: "grid",
		Nodes:     []Node{{ID: "only", X: 100, Y: 70, Width: 120, Height: 60}},
		Bounds:    Box{MinX: 40, MinY: 40, MaxX: 160, MaxY: 100},
		Width:     120,
		Height:    60,
	}

	if err := WriteLayoutFile(doc, path); err != nil {
		t.Fatalf("WriteLayoutFile() error = %v", err)
	}
	decoded, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, doc) {
		t.Errorf("file round trip changed layout:\ngot  %+v\nwant %+v", decoded, doc)
	}
}
