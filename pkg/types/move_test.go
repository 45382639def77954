package types

import "testing"

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		move Move
		want Move
	}{
		{Move{FaceR, TurnCW}, Move{FaceR, TurnCCW}},
		{Move{FaceU, TurnCCW}, Move{FaceU, TurnCW}},
		{Move{FaceF, Turn180}, Move{FaceF, Turn180}},
	}
	for _, tt := range tests {
		if got := tt.move.Inverse(); got != tt.want {
			t.Errorf("%s.Inverse() = %s, want %s", tt.move, got, tt.want)
		}
	}
}

func TestMoveMerge(t *testing.T) {
	r := Move{FaceR, TurnCW}
	rp := Move{FaceR, TurnCCW}
	r2 := Move{FaceR, Turn180}

	if m := r.Merge(r); m == nil || *m != r2 {
		t.Errorf("R+R = %v, want R2", m)
	}
	if m := r.Merge(rp); m != nil {
		t.Errorf("R+R' = %v, want nil", m)
	}
	if m := r2.Merge(r); m == nil || *m != rp {
		t.Errorf("R2+R = %v, want R'", m)
	}
	if m := r2.Merge(r2); m != nil {
		t.Errorf("R2+R2 = %v, want nil", m)
	}
	if m := r.Merge(Move{FaceU, TurnCW}); m != nil {
		t.Errorf("R+U = %v, want nil", m)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, f := range Faces {
		for _, turn := range []Turn{TurnCW, TurnCCW, Turn180} {
			m := Move{f, turn}
			if got := MoveFromToken(m.Token()); got != m {
				t.Errorf("token round trip of %s gave %s", m, got)
			}
		}
	}
}

func TestValid(t *testing.T) {
	if (Move{Face: "X", Turn: TurnCW}).Valid() {
		t.Error("face X should be invalid")
	}
	if (Move{Face: FaceR, Turn: 3}).Valid() {
		t.Error("turn 3 should be invalid")
	}
	if got := len(Move{FaceD, Turn180}.Quarters()); got != 2 {
		t.Errorf("D2 quarters = %d, want 2", got)
	}
}
