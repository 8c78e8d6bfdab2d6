package receipt

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
)

// Layout constants
const (
	imageWidth       = 640
	imageHeight      = 560
	cardMargin       = 32.0
	cardBorderRadius = 14.0
	headerHeight     = 96.0
	lineHeight       = 38.0
	labelX           = cardMargin + 28
	valueX           = 250.0
	shadowOffset     = 4.0
)

// Palette matching the app's green theme
var (
	bgColor      = color.RGBA{181, 201, 154, 255} // #B5C99A
	cardColor    = color.RGBA{250, 250, 248, 255}
	headerColor  = color.RGBA{74, 124, 89, 255} // #4A7C59
	headerText   = color.RGBA{255, 255, 255, 255}
	labelColor   = color.RGBA{113, 131, 85, 255} // #718355
	valueColor   = color.RGBA{40, 44, 48, 255}
	totalColor   = color.RGBA{178, 34, 34, 255} // #B22222
	shadowColor  = color.RGBA{0, 0, 0, 30}
	dividerColor = color.RGBA{200, 205, 195, 255}
)

// Render draws a payment receipt for a paid booking and returns it as
// PNG bytes, ready to send to the chat as a photo.
func Render(b model.Booking) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	// Background
	dc.SetColor(bgColor)
	dc.Clear()

	// Card with drop shadow
	cardW := float64(imageWidth) - 2*cardMargin
	cardH := float64(imageHeight) - 2*cardMargin
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(cardMargin+shadowOffset, cardMargin+shadowOffset, cardW, cardH, cardBorderRadius)
	dc.Fill()
	dc.SetColor(cardColor)
	dc.DrawRoundedRectangle(cardMargin, cardMargin, cardW, cardH, cardBorderRadius)
	dc.Fill()

	// Header band
	dc.SetColor(headerColor)
	dc.DrawRoundedRectangle(cardMargin, cardMargin, cardW, headerHeight, cardBorderRadius)
	dc.Fill()
	dc.DrawRectangle(cardMargin, cardMargin+headerHeight/2, cardW, headerHeight/2)
	dc.Fill()

	dc.SetColor(headerText)
	dc.DrawStringAnchored("VenueBook", float64(imageWidth)/2, cardMargin+headerHeight/2-12, 0.5, 0.5)
	dc.DrawStringAnchored("Payment Receipt", float64(imageWidth)/2, cardMargin+headerHeight/2+12, 0.5, 0.5)

	rows := []struct {
		label string
		value string
	}{
		{"Booking ID", b.ID},
		{"Venue", b.VenueName},
		{"Event type", string(b.EventType)},
		{"Date", b.Date.Format("January 2, 2006")},
		{"Time format", string(b.TimeFormat)},
		{"Package", string(b.Package)},
		{"Booked by", b.UserName},
		{"Status", string(b.PaymentStatus)},
	}

	y := cardMargin + headerHeight + 40
	for _, row := range rows {
		dc.SetColor(labelColor)
		dc.DrawString(row.label, labelX, y)
		dc.SetColor(valueColor)
		dc.DrawString(row.value, valueX, y)
		y += lineHeight
	}

	// Divider before the total
	dc.SetColor(dividerColor)
	dc.SetLineWidth(1)
	dc.DrawLine(labelX, y-10, cardMargin+cardW-28, y-10)
	dc.Stroke()

	dc.SetColor(totalColor)
	dc.DrawString("Total paid", labelX, y+16)
	dc.DrawString(fmt.Sprintf("PHP %d", b.TotalPrice), valueX, y+16)

	dc.SetColor(labelColor)
	dc.DrawStringAnchored(
		"Issued "+time.Now().Format("02.01.2006 15:04"),
		float64(imageWidth)/2, float64(imageHeight)-cardMargin-20, 0.5, 0.5,
	)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode receipt png: %w", err)
	}
	return buf.Bytes(), nil
}
