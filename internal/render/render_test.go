package render_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavelab/internal/render"
	"github.com/san-kum/wavelab/internal/wave"
)

var _ = Describe("Renderer", func() {
	var r *render.Renderer

	BeforeEach(func() {
		r = render.New(render.DefaultWidth, render.DefaultHeight)
	})

	It("is deterministic for a given frame", func() {
		for _, frame := range []int{0, 1, 17, 360, 99999} {
			Expect(r.Render(frame)).To(Equal(r.Render(frame)))
		}
	})

	It("emits exactly Height lines", func() {
		lines := strings.Split(r.Render(42), "\n")
		Expect(lines).To(HaveLen(render.DefaultHeight))
	})

	It("keeps every line at Width visible characters", func() {
		for _, line := range strings.Split(r.Render(7), "\n") {
			visible := []rune(render.StripANSI(line))
			Expect(visible).To(HaveLen(render.DefaultWidth))
		}
	})

	It("advances between consecutive frames", func() {
		Expect(r.RenderPlain(10)).NotTo(Equal(r.RenderPlain(11)))
	})

	It("draws solid, fade, and blank cells in a typical frame", func() {
		plain := r.RenderPlain(0)
		Expect(plain).To(ContainSubstring("█"))
		Expect(plain).To(ContainSubstring("▒"))
		Expect(plain).To(ContainSubstring(" "))
	})

	Describe("distance thresholds", func() {
		// A field with no components pins the centerline to
		// height/2, so distances can be engineered exactly.
		flat := func(width, height int) *render.Renderer {
			r := render.New(width, height)
			r.Field = &wave.Field{Height: height}
			return r
		}

		It("selects the fade glyph at exactly 0.5", func() {
			// Centerline sits at 10.5; rows 10 and 11 are 0.5 away.
			r := flat(4, 21)
			lines := strings.Split(r.RenderPlain(0), "\n")
			Expect(lines[10]).To(Equal(strings.Repeat("▒", 4)))
			Expect(lines[11]).To(Equal(strings.Repeat("▒", 4)))
		})

		It("selects blank at exactly 1.5", func() {
			r := flat(4, 21)
			lines := strings.Split(r.RenderPlain(0), "\n")
			Expect(lines[9]).To(Equal(strings.Repeat(" ", 4)))
			Expect(lines[12]).To(Equal(strings.Repeat(" ", 4)))
		})

		It("selects solid strictly inside 0.5", func() {
			// Centerline at 10.0 puts row 10 at distance zero.
			r := flat(4, 20)
			lines := strings.Split(r.RenderPlain(0), "\n")
			Expect(lines[10]).To(Equal(strings.Repeat("█", 4)))
		})
	})

	Describe("Centerline", func() {
		It("returns one value per column", func() {
			Expect(r.Centerline(5)).To(HaveLen(render.DefaultWidth))
		})

		It("stays within the component amplitude envelope", func() {
			half := float64(render.DefaultHeight) / 2
			for _, c := range r.Centerline(123) {
				Expect(c).To(BeNumerically(">=", half-12))
				Expect(c).To(BeNumerically("<=", half+12))
			}
		})
	})

	Describe("StripANSI", func() {
		It("removes color escapes and nothing else", func() {
			colored := r.Render(3)
			plain := r.RenderPlain(3)
			Expect(render.StripANSI(colored)).To(Equal(plain))
		})
	})
})
