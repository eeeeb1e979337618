package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/url"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

// articleImages returns the static file names of the local images articles
// reference, e.g. "/images/cover.png" -> "images/cover.png".
func articleImages(articles []Article) map[string]struct{} {
	out := make(map[string]struct{})
	for _, a := range articles {
		if a.Image == "" {
			continue
		}
		if u, err := url.Parse(a.Image); err != nil || u.IsAbs() || u.Host != "" {
			continue
		}
		out[strings.TrimPrefix(a.Image, "/")] = struct{}{}
	}
	return out
}

// resizeImage scales an image wider than maxImageWidth down to that width,
// re-encoding it in its original format. Other images, GIFs and undecodable
// data are returned unchanged with resized == false.
func resizeImage(data []byte) (out []byte, resized bool, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || format == "gif" || cfg.Width <= maxImageWidth {
		return data, false, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newH := max(h*maxImageWidth/w, 1)
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}
