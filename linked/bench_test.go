package linked

import (
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func quietTracing() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
}

// buildComplete adds a complete binary tree of the given depth below p.
func buildComplete(b *testing.B, ed *Editor[int], p bintree.Position[int], depth int) {
	if depth == 0 {
		return
	}
	l, err := ed.AddLeft(p, depth)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r, err := ed.AddRight(p, depth)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	buildComplete(b, ed, l, depth-1)
	buildComplete(b, ed, r, depth-1)
}

func BenchmarkAddDelete(b *testing.B) {
	quietTracing()
	_, ed := New[int](WithCapacity(1024))
	root, _ := ed.AddRoot(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := ed.AddLeft(root, i)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = ed.Delete(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAttach(b *testing.B) {
	quietTracing()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree, ed := New[int]()
		root, _ := ed.AddRoot(0)
		donor, ded := New[int]()
		droot, _ := ded.AddRoot(0)
		buildComplete(b, ded, droot, 8)
		b.StartTimer()
		if err := ed.Attach(root, donor, &Tree[int]{}); err != nil {
			b.Fatal(err)
		}
		if tree.Len() != 1<<9 {
			b.Fatalf("unexpected size %d", tree.Len())
		}
	}
}

func BenchmarkHeight(b *testing.B) {
	quietTracing()
	tree, ed := New[int]()
	root, _ := ed.AddRoot(0)
	buildComplete(b, ed, root, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if h, _ := bintree.Height[int](tree, tree.Root()); h != 10 {
			b.Fatalf("unexpected height %d", h)
		}
	}
}
