// Package goquery removes documentation framework chrome from saved pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docprep"
)

// frameworkProfile describes how to recognize a framework and which of its
// elements are navigation rather than content.
type frameworkProfile struct {
	framework docprep.Framework

	// generator is matched against the lowercased meta generator tag.
	generator string

	// markers identify the framework when any of them matches.
	markers []string

	// chrome lists sidebar, navbar, TOC and footer elements.
	chrome []string
}

// profiles are checked in order. VitePress precedes VuePress since its
// pages may carry VuePress-compatible classes.
var profiles = []frameworkProfile{
	{
		framework: docprep.FrameworkDocusaurus,
		generator: "docusaurus",
		markers:   []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"},
		chrome: []string{
			".theme-doc-sidebar-container", "nav.navbar", ".table-of-contents",
			".theme-doc-footer", ".pagination-nav", ".theme-doc-breadcrumbs", "footer.footer",
		},
	},
	{
		framework: docprep.FrameworkMkDocs,
		generator: "mkdocs",
		markers:   []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"},
		chrome: []string{
			".md-header", ".md-tabs", ".md-sidebar", ".md-footer", ".md-source-file",
		},
	},
	{
		framework: docprep.FrameworkSphinx,
		generator: "sphinx",
		markers:   []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"},
		chrome: []string{
			".wy-nav-side", ".sphinxsidebar", "div.related", ".rst-footer-buttons",
			".wy-breadcrumbs", "a.headerlink",
		},
	},
	{
		framework: docprep.FrameworkVitePress,
		generator: "vitepress",
		markers:   []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"},
		chrome: []string{
			".VPNav", ".VPLocalNav", ".VPSidebar", ".VPDocAside", ".VPDocFooter", "a.header-anchor",
		},
	},
	{
		framework: docprep.FrameworkVuePress,
		generator: "vuepress",
		markers:   []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"},
		chrome: []string{
			".navbar", ".sidebar", ".page-edit", ".page-nav", "a.header-anchor",
		},
	},
	{
		framework: docprep.FrameworkGitBook,
		generator: "gitbook",
		markers:   []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"},
		chrome: []string{
			"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']", "header", "footer",
		},
	},
	{
		framework: docprep.FrameworkNextra,
		generator: "nextra",
		markers:   []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"},
		chrome: []string{
			".nextra-navbar", ".nextra-sidebar-container", ".nextra-sidebar", ".nextra-toc", "footer",
		},
	},
}

// Detect returns the framework that generated doc, or FrameworkUnknown.
// A meta generator tag wins over structural markers.
func Detect(doc *goquery.Document) docprep.Framework {
	if p := detectGenerator(doc); p != nil {
		return p.framework
	}
	for i := range profiles {
		for _, marker := range profiles[i].markers {
			if doc.Find(marker).Length() > 0 {
				return profiles[i].framework
			}
		}
	}
	return docprep.FrameworkUnknown
}

func detectGenerator(doc *goquery.Document) *frameworkProfile {
	generator, _ := doc.Find("meta[name='generator']").Last().Attr("content")
	generator = strings.ToLower(generator)
	if generator == "" {
		return nil
	}
	for i := range profiles {
		if strings.Contains(generator, profiles[i].generator) {
			return &profiles[i]
		}
	}
	return nil
}

func profileFor(framework docprep.Framework) *frameworkProfile {
	for i := range profiles {
		if profiles[i].framework == framework {
			return &profiles[i]
		}
	}
	return nil
}
