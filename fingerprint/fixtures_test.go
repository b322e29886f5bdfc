package fingerprint_test

import "github.com/mcp-tool-shop-org/websketch-ir/ir"

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// minimalCapture is the golden fixture from the design notes: a bare PAGE
// root with no children, used to pin fingerprintCapture's literal output.
func minimalCapture() *ir.Capture {
	return &ir.Capture{
		Version:     "0.1",
		URL:         "https://example.com",
		TimestampMs: 1700000000000,
		Viewport:    ir.Viewport{WPx: 1920, HPx: 1080, Aspect: 1920.0 / 1080.0},
		Compiler:    ir.Compiler{Name: "websketch-ir", Version: "0.2.1", OptionsHash: "test"},
		Root: &ir.Node{
			Role:        ir.RolePage,
			BBox:        ir.BBox01{X: 0, Y: 0, W: 1, H: 1},
			Interactive: false,
			Visible:     true,
		},
	}
}

// loginPageCapture builds a small login-page tree exercising the same
// shape the design's scenarios (S1/S2) describe: a header with a heading,
// a login form with two inputs and a submit button. This fixture is not
// the design's own loginPage value (its exact JSON is not reproduced in
// the source material available here), so tests built on it assert
// self-consistent behavior rather than the design's literal golden
// digests for that fixture.
func loginPageCapture() *ir.Capture {
	heading := &ir.Node{
		Role:        ir.RoleText,
		BBox:        ir.BBox01{X: 0.05, Y: 0.02, W: 0.3, H: 0.05},
		Interactive: false,
		Visible:     true,
		Semantic:    strp("heading"),
		Text:        &ir.TextSignal{Kind: ir.TextShort, Len: intp(13), Hash: strp("heading_login")},
	}
	header := &ir.Node{
		Role:        ir.RoleHeader,
		BBox:        ir.BBox01{X: 0, Y: 0, W: 1, H: 0.1},
		Interactive: false,
		Visible:     true,
		Semantic:    strp("header"),
		Children:    []*ir.Node{heading},
	}
	username := &ir.Node{
		Role:        ir.RoleInput,
		BBox:        ir.BBox01{X: 0.32, Y: 0.25, W: 0.36, H: 0.05},
		Interactive: true,
		Visible:     true,
		Enabled:     boolp(true),
		Focusable:   boolp(true),
		Semantic:    strp("username"),
	}
	password := &ir.Node{
		Role:        ir.RoleInput,
		BBox:        ir.BBox01{X: 0.32, Y: 0.32, W: 0.36, H: 0.05},
		Interactive: true,
		Visible:     true,
		Enabled:     boolp(true),
		Focusable:   boolp(true),
		Semantic:    strp("password"),
	}
	submit := &ir.Node{
		Role:        ir.RoleButton,
		BBox:        ir.BBox01{X: 0.32, Y: 0.52, W: 0.36, H: 0.06},
		Interactive: true,
		Visible:     true,
		Enabled:     boolp(true),
		Focusable:   boolp(true),
		Semantic:    strp("primary_cta"),
		Text:        &ir.TextSignal{Kind: ir.TextShort, Len: intp(6), Hash: strp("submit")},
	}
	form := &ir.Node{
		Role:        ir.RoleForm,
		BBox:        ir.BBox01{X: 0.3, Y: 0.2, W: 0.4, H: 0.4},
		Interactive: false,
		Visible:     true,
		Semantic:    strp("login"),
		Children:    []*ir.Node{username, password, submit},
	}
	footer := &ir.Node{
		Role:        ir.RoleFooter,
		BBox:        ir.BBox01{X: 0, Y: 0.95, W: 1, H: 0.05},
		Interactive: false,
		Visible:     true,
	}
	root := &ir.Node{
		Role:        ir.RolePage,
		BBox:        ir.BBox01{X: 0, Y: 0, W: 1, H: 1},
		Interactive: false,
		Visible:     true,
		Children:    []*ir.Node{header, form, footer},
	}
	return &ir.Capture{
		Version:     "0.1",
		URL:         "https://example.com/login",
		TimestampMs: 1700000000000,
		Viewport:    ir.Viewport{WPx: 1920, HPx: 1080, Aspect: 1920.0 / 1080.0},
		Compiler:    ir.Compiler{Name: "websketch-ir", Version: "0.2.1", OptionsHash: "test"},
		Root:        root,
	}
}

func intp(i int) *int { return &i }
