package views

import (
	"bytes"
	"html/template"

	"github.com/dgallion1/ragview/internal/assets"
	"github.com/dgallion1/ragview/internal/sellingpoints"
)

// SellingPointBlock is one rendered highlight, keyed by its title.
type SellingPointBlock struct {
	Key     string
	Image   string
	AltText string
	Title   string
	Body    template.HTML
}

// SellingPointBlocks maps points to blocks one-to-one, in order.
func (r *Renderer) SellingPointBlocks(points []sellingpoints.SellingPoint) []SellingPointBlock {
	blocks := make([]SellingPointBlock, 0, len(points))
	for _, p := range points {
		blocks = append(blocks, SellingPointBlock{
			Key:     p.Title,
			Image:   p.Image,
			AltText: p.AltText,
			Title:   p.Title,
			Body:    r.markdown(p.Body),
		})
	}
	return blocks
}

// markdown renders body with goldmark. Raw HTML in the source is not
// passed through (goldmark's default), so the result is safe to embed.
func (r *Renderer) markdown(body string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(buf.String())
}

// GettingStartedPage is the data for PageGettingStarted.
type GettingStartedPage struct {
	Page
	Logo          string
	Splash        string
	StartAction   string
	SellingPoints []SellingPointBlock
}

// NewGettingStartedPage builds the landing page. startAction is where the
// "Get Started" button posts.
func (r *Renderer) NewGettingStartedPage(points []sellingpoints.SellingPoint, startAction string) GettingStartedPage {
	return GettingStartedPage{
		Page:          newPage("RAG Studio"),
		Logo:          assets.Logo,
		Splash:        assets.Welcome,
		StartAction:   startAction,
		SellingPoints: r.SellingPointBlocks(points),
	}
}

// NoKnowledgeBasePage is the data for PageNoKnowledgeBase.
type NoKnowledgeBasePage struct {
	Page
	SellingPoints []SellingPointBlock
}

// NewNoKnowledgeBasePage builds the page shown for chats with no data source.
func (r *Renderer) NewNoKnowledgeBasePage(points []sellingpoints.SellingPoint) NoKnowledgeBasePage {
	return NoKnowledgeBasePage{
		Page:          newPage("No knowledge base"),
		SellingPoints: r.SellingPointBlocks(points),
	}
}
