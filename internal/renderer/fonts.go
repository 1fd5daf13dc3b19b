package renderer

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

// captionTTF parses the bundled Go Regular face. The parse happens once;
// every caption shares the result.
func captionTTF() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = truetype.Parse(goregular.TTF)
	})
	return captionFont, captionFontErr
}
