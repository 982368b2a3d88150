package checksum

import "testing"

func TestSum_Stable(t *testing.T) {
	a := Sum([]byte("content"))
	b := Sum([]byte("content"))
	if a != b {
		t.Errorf("Sum not deterministic: %s vs %s", a, b)
	}
	if a == Sum([]byte("other")) {
		t.Error("different content must not collide")
	}
}

func TestSet_SensitiveToNameAndContent(t *testing.T) {
	base := Set([]Entry{{Name: "a.md", Data: []byte("x")}, {Name: "b.md", Data: []byte("y")}})

	sameAgain := Set([]Entry{{Name: "a.md", Data: []byte("x")}, {Name: "b.md", Data: []byte("y")}})
	if base != sameAgain {
		t.Error("identical sets must hash identically")
	}

	renamed := Set([]Entry{{Name: "c.md", Data: []byte("x")}, {Name: "b.md", Data: []byte("y")}})
	if base == renamed {
		t.Error("renaming a file must change the digest")
	}

	edited := Set([]Entry{{Name: "a.md", Data: []byte("x2")}, {Name: "b.md", Data: []byte("y")}})
	if base == edited {
		t.Error("editing a file must change the digest")
	}

	reordered := Set([]Entry{{Name: "b.md", Data: []byte("y")}, {Name: "a.md", Data: []byte("x")}})
	if base == reordered {
		t.Error("entry order participates in the digest")
	}
}
