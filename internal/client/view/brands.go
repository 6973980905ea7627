package view

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

// Brands renders the brand strip. It is empty when there are no brands.
func (r *Renderer) Brands(brands []models.Brand) string {
	if len(brands) == 0 {
		return ""
	}
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, Sanitize(b.Name))
	}
	return r.st.Title.Render("Our Brands") + "\n" +
		r.st.Subtitle.Render("Partnered with the finest furniture brands") + "\n" +
		"  " + strings.Join(names, "  ·  ")
}

// AdRotationInterval is how long each advertisement stays on screen.
const AdRotationInterval = 5 * time.Second

// AdCarousel tracks which advertisement is showing. Rotation is derived
// from elapsed time, so the carousel needs no goroutine.
type AdCarousel struct {
	ads      []models.Advertisement
	start    time.Time
	interval time.Duration
	offset   int
}

func NewAdCarousel(ads []models.Advertisement, start time.Time) *AdCarousel {
	return &AdCarousel{ads: ads, start: start, interval: AdRotationInterval}
}

func (c *AdCarousel) Len() int { return len(c.ads) }

// IndexAt returns the index showing at t.
func (c *AdCarousel) IndexAt(t time.Time) int {
	n := len(c.ads)
	if n <= 1 {
		return 0
	}
	ticks := 0
	if elapsed := t.Sub(c.start); elapsed > 0 {
		ticks = int(elapsed / c.interval)
	}
	return (c.offset + ticks) % n
}

// Select jumps to ad i at time t, like clicking a carousel dot.
func (c *AdCarousel) Select(i int, t time.Time) {
	n := len(c.ads)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	c.start = t
	c.offset = i
}

// Advertisement renders the ad showing at t, or "" without ads.
func (r *Renderer) Advertisement(c *AdCarousel, t time.Time) string {
	if c == nil || c.Len() == 0 {
		return ""
	}
	idx := c.IndexAt(t)
	ad := c.ads[idx]

	var b strings.Builder
	kind := "Image"
	if ad.MediaType == models.MediaTypeVideo {
		kind = "Video"
	}
	if title := Sanitize(ad.Title); title != "" {
		b.WriteString(r.st.Title.Render(title) + "\n")
	}
	b.WriteString("  " + kind + ": " + ad.Media + "\n")
	if ad.RedirectLink != "" {
		b.WriteString("  Learn More: " + ad.RedirectLink + "\n")
	}
	if c.Len() > 1 {
		dots := make([]string, c.Len())
		for i := range dots {
			dots[i] = "○"
			if i == idx {
				dots[i] = "●"
			}
		}
		b.WriteString("  " + strings.Join(dots, " "))
	}
	return strings.TrimRight(b.String(), "\n")
}
