package playlist

import (
	"testing"
)

// actionFor maps a fuzz byte to an action.
func actionFor(op byte, name string, id int64) Action {
	switch op % 5 {
	case 0:
		return Add{SongName: name, ID: id}
	case 1:
		return Remove{ID: id}
	case 2:
		return Clear{}
	case 3:
		return Undo{}
	default:
		return Redo{}
	}
}

// FuzzReduce drives random action sequences through the reducer and checks
// song ids stay unique and undo always restores the previous songs.
// Run with: go test ./internal/playlist -fuzz=FuzzReduce -fuzztime=30s
func FuzzReduce(f *testing.F) {
	f.Add([]byte{0, 0, 1, 3, 4, 2, 3}, "Song", int64(1))
	f.Add([]byte{0, 0, 0, 0}, "  ", int64(0))
	f.Add([]byte{3, 4, 3, 4}, "x", int64(-5))

	r := Reducer{HistoryLimit: 8}
	f.Fuzz(func(t *testing.T, ops []byte, name string, id int64) {
		if id < -1<<40 || id > 1<<40 {
			return
		}
		s := NewState()
		for i, op := range ops {
			prev := s
			s = r.Reduce(s, actionFor(op, name, id+int64(i%3)))

			seen := make(map[int64]bool)
			for _, song := range s.Songs {
				if seen[song.ID] {
					t.Fatalf("duplicate id %d after %v", song.ID, ops[:i+1])
				}
				seen[song.ID] = true
			}
			if len(s.Past) > r.HistoryLimit {
				t.Fatalf("past grew to %d", len(s.Past))
			}

			if len(s.Past) > len(prev.Past) {
				undone := r.Reduce(s, Undo{})
				if len(undone.Songs) != len(prev.Songs) {
					t.Fatalf("undo restored %d songs, want %d", len(undone.Songs), len(prev.Songs))
				}
			}
		}
	})
}

func BenchmarkReduceAdd(b *testing.B) {
	r := Reducer{HistoryLimit: 100}
	s := NewState()
	for i := 0; i < b.N; i++ {
		s = r.Reduce(s, Add{SongName: "Song", ID: int64(i + 1)})
		if len(s.Songs) > 1000 {
			s = NewState()
		}
	}
}

func BenchmarkSearch1000(b *testing.B) {
	s := NewState()
	for i := 0; i < 1000; i++ {
		s = Reduce(s, Add{SongName: "Song number " + string(rune('a'+i%26)), ID: int64(i + 1)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Search(s, "song b")
	}
}
