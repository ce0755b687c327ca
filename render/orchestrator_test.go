package render

import (
	"reflect"
	"testing"
)

type namedLayer struct {
	name    string
	out     *[]string
	visible bool
}

func (l *namedLayer) Render(c Canvas, ctx *int) {
	*ctx++
	*l.out = append(*l.out, l.name)
}

func (l *namedLayer) IsVisible() bool { return l.visible }

func TestOrchestratorOrder(t *testing.T) {
	var order []string
	o := NewOrchestrator[*int]()
	o.Register(&namedLayer{name: "footer", out: &order, visible: true}, PriorityFooter)
	o.Register(&namedLayer{name: "paper", out: &order, visible: true}, PriorityPaper)
	o.Register(&namedLayer{name: "header", out: &order, visible: true}, PriorityHeader)
	o.Register(&namedLayer{name: "header2", out: &order, visible: true}, PriorityHeader)

	if o.Len() != 4 {
		t.Fatalf("Len = %d", o.Len())
	}

	calls := 0
	o.Render(NewRecorder(), &calls)
	want := []string{"paper", "header", "header2", "footer"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Order = %v, want %v", order, want)
	}
	if calls != 4 {
		t.Errorf("Context shared across %d calls, want 4", calls)
	}
}

func TestOrchestratorVisibility(t *testing.T) {
	var order []string
	o := NewOrchestrator[*int]()
	o.Register(&namedLayer{name: "paper", out: &order, visible: true}, PriorityPaper)
	o.Register(&namedLayer{name: "ornament", out: &order, visible: false}, PriorityOrnament)

	calls := 0
	o.Render(NewRecorder(), &calls)
	if !reflect.DeepEqual(order, []string{"paper"}) {
		t.Errorf("Hidden layer rendered: %v", order)
	}
}

func TestLayerFunc(t *testing.T) {
	rec := NewRecorder()
	o := NewOrchestrator[string]()
	o.Register(LayerFunc[string](func(c Canvas, s string) {
		c.Text(s, 0, 0, TextStyle{}, Opaque(RGBBlack))
	}), PriorityContent)

	o.Render(rec, "hello")
	if got := rec.Texts(); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("Texts = %v", got)
	}
}
