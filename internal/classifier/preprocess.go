package classifier

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the upload formats accepted by the API.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// preprocess decodes raw image bytes and converts them into a normalized
// NHWC float32 tensor backing of shape [1, height, width, 3]:
// resize to the model's declared spatial dimensions, scale pixels to [0,1].
func preprocess(imageBytes []byte, height, width int) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	data := make([]float32, height*width*3)
	i := 0
	for y := 0; y < height; y++ {
		row := resized.Pix[y*resized.Stride : y*resized.Stride+width*4]
		for x := 0; x < width; x++ {
			data[i] = float32(row[x*4]) / 255.0
			data[i+1] = float32(row[x*4+1]) / 255.0
			data[i+2] = float32(row[x*4+2]) / 255.0
			i += 3
		}
	}
	return data, nil
}

// argMax returns the index and value of the maximum probability.
func argMax(probs []float32) (int, float32) {
	best := 0
	bestVal := probs[0]
	for i, v := range probs[1:] {
		if v > bestVal {
			best = i + 1
			bestVal = v
		}
	}
	return best, bestVal
}
