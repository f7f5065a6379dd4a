package face

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	svgWidth   = 400
	svgHeight  = 300
	eyeSize    = 100
	eyeTop     = 50
	pupilR     = 14
	mouthWidth = 120
	mouthY     = 225
)

var eyeLeft = [2]float64{70, 230}

// RenderSVG draws s as a single line of SVG markup.
func RenderSVG(w io.Writer, s State, t Theme) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" class="face">`, svgWidth, svgHeight)
	b.WriteString(`<defs>`)
	for i, x := range eyeLeft {
		fmt.Fprintf(b, `<clipPath id="eye-clip-%d"><rect x="%g" y="%d" width="%d" height="%d" rx="%d"/></clipPath>`,
			i, x, eyeTop, eyeSize, eyeSize, eyeSize/2)
	}
	b.WriteString(`</defs>`)

	fmt.Fprintf(b, `<rect width="%d" height="%d" rx="40" fill="%s"/>`, svgWidth, svgHeight, t.Skin.Hex())

	pupils := [2]Point{s.PupilLeft, s.PupilRight}
	lids := [2]float64{s.LidLeft, s.LidRight}
	for i, x := range eyeLeft {
		fmt.Fprintf(b, `<g clip-path="url(#eye-clip-%d)">`, i)
		fmt.Fprintf(b, `<rect x="%g" y="%d" width="%d" height="%d" fill="%s"/>`, x, eyeTop, eyeSize, eyeSize, t.Eye.Hex())
		fmt.Fprintf(b, `<circle class="pupil" cx="%g" cy="%g" r="%d" fill="%s"/>`,
			x+pupils[i].X*eyeSize/100, eyeTop+pupils[i].Y*eyeSize/100, pupilR, t.Pupil.Hex())
		fmt.Fprintf(b, `<rect class="lid" x="%g" y="%g" width="%d" height="%d" fill="%s"/>`,
			x, eyeTop+lids[i]*eyeSize/100, eyeSize, eyeSize, t.Lid.Hex())
		b.WriteString(`</g>`)
	}

	rx, ry := 0.0, 0.0
	if s.MouthRounded {
		rx, ry = mouthWidth/2, s.MouthHeight/2
	}
	fmt.Fprintf(b, `<rect class="mouth" x="%d" y="%g" width="%d" height="%g" rx="%g" ry="%g" fill="%s"/>`,
		(svgWidth-mouthWidth)/2, mouthY-s.MouthHeight/2, mouthWidth, s.MouthHeight, rx, ry, t.Mouth.Hex())

	b.WriteString(`</svg>`)
	return b.Flush()
}

// SVG returns RenderSVG's output as a string.
func SVG(s State, t Theme) string {
	var sb strings.Builder
	RenderSVG(&sb, s, t)
	return sb.String()
}
