// Package sellingpoints holds the static feature highlights shown on the
// landing page and on chats that have no knowledge base attached.
package sellingpoints

import "slices"

// SellingPoint is one feature highlight: an icon, a title and a short body.
// Body may contain inline markdown.
type SellingPoint struct {
	Image   string // asset path under /assets/
	AltText string
	Title   string
	Body    string
}

var gettingStarted = []SellingPoint{
	{
		Image:   "/assets/images/knowledge-base.svg",
		AltText: "knowledge base",
		Title:   "Knowledge Bases",
		Body:    "Upload your documents once and chat with them from any session.",
	},
	{
		Image:   "/assets/images/models.svg",
		AltText: "models",
		Title:   "Your Models",
		Body:    "Answers come from the inference and embedding models **you** configure.",
	},
	{
		Image:   "/assets/images/sources.svg",
		AltText: "sources",
		Title:   "Cited Sources",
		Body:    "Every answer links back to the chunks it used, with page and section.",
	},
}

var noKnowledgeBase = []SellingPoint{
	{
		Image:   "/assets/images/knowledge-base.svg",
		AltText: "knowledge base",
		Title:   "Add a Knowledge Base",
		Body:    "Attach a knowledge base to ground this chat in your own documents.",
	},
	{
		Image:   "/assets/images/chat.svg",
		AltText: "chat",
		Title:   "Chat Directly",
		Body:    "Without a knowledge base, questions go straight to the model.",
	},
	{
		Image:   "/assets/images/sources.svg",
		AltText: "sources",
		Title:   "Inspect Sources",
		Body:    "Open any cited chunk to see its text and where it sits in the document.",
	},
}

// GettingStarted returns the highlights shown on the landing page.
func GettingStarted() []SellingPoint { return slices.Clone(gettingStarted) }

// NoKnowledgeBase returns the highlights shown for chats with no data source.
func NoKnowledgeBase() []SellingPoint { return slices.Clone(noKnowledgeBase) }
