package site

// Defaults are the shipped content values. Stored overrides take precedence
// key by key; anything not overridden falls back to these.
var Defaults = map[string]string{
	"hero.title":    "Regenplastics Private Limited",
	"hero.subtitle": "Injection-grade recycled PP granules for packaging and industrial applications.",

	"hero.ctaPrimaryText": "Talk to Sales",
	"hero.ctaPrimaryHref": "mailto:info@regenplastic.com",

	"hero.ctaSecondaryText": "Employee Tracker",
	"hero.ctaSecondaryHref": "/tracker",

	"about.heading": "About Regenplastics",
	"about.body":    "Regenplastics manufactures high-quality recycled polypropylene (rPP) granules using advanced washing, sorting and extrusion technology.",

	"products.heading": "Products",
	"process.heading":  "Manufacturing Process",
	"quality.heading":  "Quality & Traceability",

	"cta.heading":    "Need consistent recycled PP for injection molding?",
	"cta.body":       "Share your application requirements and target MFI. Our team will recommend the right recycled polymer solution.",
	"cta.buttonText": "Contact: info@regenplastic.com",
	"cta.buttonHref": "mailto:info@regenplastic.com",

	"footer.note": "© Regenplastics Private Limited. All rights reserved.",
}
