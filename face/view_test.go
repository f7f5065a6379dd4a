package face

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestViewSubscribe(t *testing.T) {
	v := NewView()
	var got []string
	unsubscribe := v.Subscribe(func(s State) {
		got = append(got, s.Status)
	})

	v.SetStatus(StatusPlaying, "a")
	v.SetStatus(StatusFinished, "a")
	unsubscribe()
	v.SetStatus(StatusPlaying, "b")

	if len(got) != 2 || got[0] != StatusPlaying || got[1] != StatusFinished {
		t.Errorf("unexpected notifications %v", got)
	}
	if s := v.Snapshot(); s.Playback != "b" {
		t.Errorf("expected playback b, got %q", s.Playback)
	}
}

func TestStateInterpolate(t *testing.T) {
	a := State{MouthHeight: 2, PupilLeft: Point{10, 10}, LidLeft: -100, Mouth: 1}
	b := State{MouthHeight: 55, PupilLeft: Point{50, 90}, LidLeft: 0, Mouth: 5, MouthRounded: true}

	mid := a.Interpolate(b, 0.5)
	if mid.MouthHeight != 28.5 {
		t.Errorf("expected mouth 28.5, got %v", mid.MouthHeight)
	}
	if mid.PupilLeft != (Point{30, 50}) {
		t.Errorf("expected pupil {30 50}, got %+v", mid.PupilLeft)
	}
	if mid.LidLeft != -50 {
		t.Errorf("expected lid -50, got %v", mid.LidLeft)
	}
	if mid.Mouth != 5 || !mid.MouthRounded {
		t.Error("expected discrete fields from the target")
	}
	if end := a.Interpolate(b, 1); end != b {
		t.Errorf("expected target at t=1, got %+v", end)
	}
}

func TestJournalEchoAndBound(t *testing.T) {
	var buf bytes.Buffer
	j := NewJournal(3, log.New(&buf, "", 0))
	j.now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.Local) }

	for i := 0; i < 5; i++ {
		j.Appendf("line %d", i)
	}

	entries := j.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 retained entries, got %d", len(entries))
	}
	if entries[0].Message != "line 2" || entries[2].Message != "line 4" {
		t.Errorf("expected the newest entries, got %v", entries)
	}
	if !strings.Contains(buf.String(), "[15:04:05] line 0\n") {
		t.Errorf("expected echoed line, got %q", buf.String())
	}
}

func TestViewDeliversInWriteOrder(t *testing.T) {
	v := NewView()
	entered := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	var seen []int
	first := true
	v.Subscribe(func(s State) {
		mu.Lock()
		block := first
		first = false
		mu.Unlock()
		if block {
			close(entered)
			<-release
		}
		mu.Lock()
		seen = append(seen, s.Mouth)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		v.Update(func(s *State) { s.Mouth = 2 })
	}()
	<-entered
	go func() {
		defer wg.Done()
		v.Update(func(s *State) { s.Mouth = 5 })
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %v", seen)
	}
	if last := seen[len(seen)-1]; last != v.Snapshot().Mouth {
		t.Errorf("view mouth=%d, last listener saw mouth=%d", v.Snapshot().Mouth, last)
	}
	if seen[0] != 2 || seen[1] != 5 {
		t.Errorf("expected writes delivered as [2 5], got %v", seen)
	}
}

func TestJournalDeliversInAppendOrder(t *testing.T) {
	j := NewJournal(0, log.New(io.Discard, "", 0))
	var mu sync.Mutex
	var seen []string
	j.Subscribe(func(e Entry) {
		mu.Lock()
		seen = append(seen, e.Message)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				j.Appendf("g%d-%d", g, i)
			}
		}(g)
	}
	wg.Wait()

	entries := j.Entries()
	mu.Lock()
	defer mu.Unlock()
	if len(seen) != len(entries) {
		t.Fatalf("expected %d deliveries, got %d", len(entries), len(seen))
	}
	for i := range entries {
		if seen[i] != entries[i].Message {
			t.Fatalf("delivery %d: got %q, journal holds %q", i, seen[i], entries[i].Message)
		}
	}
}

func TestJournalAttach(t *testing.T) {
	j := NewJournal(0, log.New(io.Discard, "", 0))
	for i := 0; i < 3; i++ {
		j.Appendf("before %d", i)
	}

	var got []string
	var backlog []Entry
	detach := j.Attach(func(b []Entry) { backlog = b }, func(e Entry) {
		got = append(got, e.Message)
	})
	j.Append("after")
	detach()
	j.Append("detached")

	if len(backlog) != 3 || backlog[2].Message != "before 2" {
		t.Errorf("unexpected backlog %v", backlog)
	}
	if fmt.Sprint(got) != "[after]" {
		t.Errorf("expected only the live entry, got %v", got)
	}
}
