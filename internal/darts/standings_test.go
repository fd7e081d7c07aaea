package darts

import "testing"

func TestStandings(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) GameState
		want  []string
	}{
		{
			name: "countdown lowest remaining first",
			build: func(t *testing.T) GameState {
				s := newTestGame(t, ModeCountdown, 301, "Ann", "Bob", "Cid")
				s = mustThrow(t, s, 0, 60)
				s = mustThrow(t, s, 1, 100)
				return mustThrow(t, s, 2, 20)
			},
			want: []string{"Bob", "Ann", "Cid"},
		},
		{
			name: "rounds highest total first",
			build: func(t *testing.T) GameState {
				s := newTestGame(t, ModeRounds, 3, "Ann", "Bob")
				s = mustThrow(t, s, 0, 20)
				return mustThrow(t, s, 1, 45)
			},
			want: []string{"Bob", "Ann"},
		},
		{
			name: "winner leads",
			build: func(t *testing.T) GameState {
				s := newTestGame(t, ModeRounds, 1, "Ann", "Bob", "Cid")
				s = mustThrow(t, s, 0, 50)
				s = mustThrow(t, s, 1, 50)
				return mustThrow(t, s, 2, 10)
			},
			want: []string{"Ann", "Bob", "Cid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standings(tt.build(t))
			if len(got) != len(tt.want) {
				t.Fatalf("Standings() returned %d rows, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("Standings()[%d] = %s, want %s", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestStandingsMarksWinner(t *testing.T) {
	s := newTestGame(t, ModeCountdown, 40, "Ann", "Bob")
	s = mustThrow(t, s, 0, 40)

	got := Standings(s)
	if !got[0].Winner || got[0].Name != "Ann" || got[0].Value != 0 {
		t.Errorf("Standings()[0] = %+v, want winner Ann on 0", got[0])
	}
	if got[1].Winner {
		t.Errorf("Standings()[1] = %+v, should not be a winner", got[1])
	}
}
