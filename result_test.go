package treewire_test

import (
	"testing"

	tw "github.com/treewire/treewire"
)

func TestResultBasics(t *testing.T) {
	ok := tw.Ok(42)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatalf("Ok result reported as error")
	}
	if got := ok.Value(); got != 42 {
		t.Fatalf("Value = %d, want 42", got)
	}
	if ok.Error() != "" {
		t.Fatalf("Ok Error = %q, want empty", ok.Error())
	}

	e := tw.Err[int]("boom")
	if e.IsOk() || !e.IsErr() {
		t.Fatalf("Err result reported as ok")
	}
	if e.Error() != "boom" {
		t.Fatalf("Error = %q, want boom", e.Error())
	}
	if _, ok := e.Get(); ok {
		t.Fatalf("Get on Err reported ok")
	}
}

func TestResultErrf(t *testing.T) {
	e := tw.Errf[string]("bad value %d", 7)
	if got := e.Error(); got != "bad value 7" {
		t.Fatalf("Errf message = %q", got)
	}
}

func TestMapResult(t *testing.T) {
	doubled := tw.MapResult(tw.Ok(21), func(v int) int { return v * 2 })
	if doubled.Value() != 42 {
		t.Fatalf("MapResult value = %d, want 42", doubled.Value())
	}
	passed := tw.MapResult(tw.Err[int]("nope"), func(v int) int { return v * 2 })
	if passed.Error() != "nope" {
		t.Fatalf("MapResult on Err = %q", passed.Error())
	}
}

func TestThenResult(t *testing.T) {
	r := tw.ThenResult(tw.Ok(2), func(v int) tw.Result[string] {
		if v > 0 {
			return tw.Ok("pos")
		}
		return tw.Err[string]("neg")
	})
	if r.Value() != "pos" {
		t.Fatalf("ThenResult value = %q", r.Value())
	}
	short := tw.ThenResult(tw.Err[int]("stop"), func(v int) tw.Result[string] {
		t.Fatalf("continuation ran on Err")
		return tw.Ok("")
	})
	if short.Error() != "stop" {
		t.Fatalf("ThenResult on Err = %q", short.Error())
	}
}
