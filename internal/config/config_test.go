package config

import "testing"

func TestSetTileParamClamps(t *testing.T) {
	defer SetTileParam(GetTileParam())

	for _, c := range []struct{ in, want int }{
		{1, MinTileParam},
		{2, 2},
		{6, 6},
		{65, MaxTileParam},
		{-3, MinTileParam},
	} {
		SetTileParam(c.in)
		if got := GetTileParam(); got != c.want {
			t.Errorf("SetTileParam(%d): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	oldB, oldDir := GetTileParam(), GetImageDir()
	defer func() {
		SetTileParam(oldB)
		SetImageDir(oldDir)
	}()

	SetTileParam(8)
	SetImageDir("out")
	b := Snapshot()
	if b.B != 8 || b.ImageDir != "out" {
		t.Fatalf("Snapshot = %+v", b)
	}

	SetImageDir("")
	if got := GetImageDir(); got != "." {
		t.Errorf("empty image dir not defaulted: %q", got)
	}
	if b.ImageDir != "out" {
		t.Error("snapshot changed with the settings")
	}
	if Snapshot().DescriptorList != "blockdescriptor.list" {
		t.Errorf("descriptor list default %q", Snapshot().DescriptorList)
	}
}
