package folio

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"testing"
)

func TestArticleImages(t *testing.T) {
	got := articleImages([]Article{
		{Image: "/images/a.png"},
		{Image: "images/b.jpg"},
		{Image: "https://cdn.example.com/c.png"},
		{},
	})
	if len(got) != 2 {
		t.Fatalf("images = %v", got)
	}
	for _, name := range []string{"images/a.png", "images/b.jpg"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing %s", name)
		}
	}
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResizeImage(t *testing.T) {
	out, resized, err := resizeImage(encodeJPEG(t, 1000, 500))
	if err != nil || !resized {
		t.Fatalf("resized = %v, err = %v", resized, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" || cfg.Width != maxImageWidth || cfg.Height != 400 {
		t.Errorf("got %s %dx%d", format, cfg.Width, cfg.Height)
	}
}

func TestResizeImageVeryWide(t *testing.T) {
	out, resized, err := resizeImage(encodeJPEG(t, 1700, 1))
	if err != nil || !resized {
		t.Fatalf("resized = %v, err = %v", resized, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != maxImageWidth || cfg.Height != 1 {
		t.Errorf("got %dx%d, want %dx1", cfg.Width, cfg.Height, maxImageWidth)
	}
}

func TestResizeImageLeavesOthers(t *testing.T) {
	small := encodeJPEG(t, 640, 480)
	if out, resized, err := resizeImage(small); err != nil || resized || !bytes.Equal(out, small) {
		t.Errorf("small image changed: resized=%v err=%v", resized, err)
	}

	var anim bytes.Buffer
	frame := image.NewPaletted(image.Rect(0, 0, 1200, 10), palette.Plan9)
	if err := gif.Encode(&anim, frame, nil); err != nil {
		t.Fatal(err)
	}
	if _, resized, _ := resizeImage(anim.Bytes()); resized {
		t.Error("gif was resized")
	}

	garbage := []byte("not an image")
	if out, resized, err := resizeImage(garbage); err != nil || resized || !bytes.Equal(out, garbage) {
		t.Errorf("garbage: resized=%v err=%v", resized, err)
	}
}
