package devtools

import (
	"strings"
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/app/messaging"
)

// pagePrelude stubs the DOM surface the page script touches.
const pagePrelude = `
var window = this;
var __sent = [];
var __timers = [];
var __listeners = {};
var __appended = [];
window.location = { href: __href };
window.takeMeHome = function (msg) { __sent.push(JSON.parse(msg)); };
window.focus = function () { window.__focused = true; };
window.addEventListener = function (type, fn) {
  (__listeners['window:' + type] = __listeners['window:' + type] || []).push(fn);
};
function setTimeout(fn, ms) { __timers.push({ fn: fn, ms: ms, cleared: false }); return __timers.length; }
function clearTimeout(id) { if (__timers[id - 1]) { __timers[id - 1].cleared = true; } }
var document = {
  readyState: 'complete',
  activeElement: null,
  body: { focus: function () {}, appendChild: function (el) { __appended.push(el); } },
  createElement: function (tag) { return { tagName: tag.toUpperCase(), style: {} }; },
  querySelector: function () { return null; },
  addEventListener: function (type, fn) {
    (__listeners['document:' + type] = __listeners['document:' + type] || []).push(fn);
  }
};
function __reply(index, data, success) {
  return window.__takeMeHome.resolve({ requestId: __sent[index].requestId, success: success !== false, data: data });
}
function __click(href, target, rel) {
  var ev = {
    prevented: false,
    target: { tagName: 'A', href: href, target: target || '', getAttribute: function () { return rel || null; } },
    preventDefault: function () { this.prevented = true; }
  };
  __listeners['document:click'][0](ev);
  return ev;
}
`

type pageVM struct {
	t  *testing.T
	vm *sobek.Runtime
}

func loadPage(t *testing.T, href string) *pageVM {
	t.Helper()
	src, err := RenderPageScript(DefaultPageConfig())
	require.NoError(t, err)

	vm := sobek.New()
	require.NoError(t, vm.Set("__href", href))
	_, err = vm.RunString(pagePrelude)
	require.NoError(t, err)
	_, err = vm.RunString(src)
	require.NoError(t, err)

	p := &pageVM{t: t, vm: vm}
	require.Equal(t, int64(1), p.number("__sent.length"))
	require.Equal(t, "getConstants", p.text("__sent[0].action"))
	return p
}

func (p *pageVM) eval(expr string) sobek.Value {
	p.t.Helper()
	v, err := p.vm.RunString(expr)
	require.NoError(p.t, err, expr)
	return v
}

func (p *pageVM) text(expr string) string { return p.eval(expr).String() }

func (p *pageVM) number(expr string) int64 { return p.eval(expr).ToInteger() }

func (p *pageVM) truthy(expr string) bool { return p.eval(expr).ToBoolean() }

// constants answers the getConstants request every page sends first.
func (p *pageVM) constants() {
	p.eval(`__reply(0, { marker: 'TakeMeHomeSameTab', hintDelayMs: 3000 })`)
}

func TestRenderPageScript(t *testing.T) {
	src, err := RenderPageScript(PageConfig{HintDelayMs: 1500})
	require.NoError(t, err)

	assert.NotContains(t, src, configPlaceholder)
	assert.Contains(t, src, `"binding":"`+messaging.BindingName+`"`)
	assert.Contains(t, src, `"marker":"TakeMeHomeSameTab"`)
	assert.Contains(t, src, `"hintDelayMs":1500`)
	assert.Contains(t, src, "chrome://newtab")
}

func TestPageScript_RedirectsNewTab(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")
	p.constants()

	require.Equal(t, "checkRedirectStatus", p.text("__sent[1].action"))
	assert.Equal(t, int64(3000), p.number("__timers[0].ms"))

	p.eval(`__reply(1, { shouldRedirect: true, redirectUrl: 'https://example.com/?TakeMeHomeSameTab=true' })`)

	assert.Equal(t, "https://example.com/?TakeMeHomeSameTab=true", p.text("window.location.href"))
	assert.True(t, p.truthy("__timers[0].cleared"))
}

func TestPageScript_FocusesExistingTab(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")
	p.constants()

	p.eval(`__reply(1, { focusExistingTab: true, homepageTabId: 'tab-1', resetUrl: true, resetToUrl: 'https://example.com/?TakeMeHomeSameTab=true' })`)

	require.Equal(t, int64(3), p.number("__sent.length"))
	assert.Equal(t, "focusExisting", p.text("__sent[2].action"))
	assert.Equal(t, "tab-1", p.text("__sent[2].payload.homepageTabId"))
	assert.True(t, p.truthy("__sent[2].payload.resetUrl"))
	assert.Equal(t, "chrome://newtab/", p.text("window.location.href"))
}

func TestPageScript_ShowsHintWithoutHomepage(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")
	p.constants()

	p.eval(`__reply(1, { shouldRedirect: false })`)
	assert.False(t, p.truthy("__timers[0].cleared"))
	assert.Equal(t, int64(0), p.number("__appended.length"))

	p.eval(`__timers[0].fn()`)
	require.Equal(t, int64(1), p.number("__appended.length"))
	assert.Equal(t, "takemehome-hint", p.text("__appended[0].id"))
}

func TestPageScript_ErrorResponseShowsHint(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")
	p.constants()

	p.eval(`__reply(1, null, false)`)
	require.Equal(t, int64(1), p.number("__appended.length"))
	assert.Contains(t, p.text("__appended[0].textContent"), "Error checking redirect status")
}

func TestPageScript_HomepageInterceptsLinks(t *testing.T) {
	p := loadPage(t, "https://example.com/?TakeMeHomeSameTab=true")
	p.constants()

	require.Equal(t, "markAsHomepageTab", p.text("__sent[1].action"))
	p.eval(`__reply(1, { success: true, tabId: 'tab-1' })`)
	require.Equal(t, int64(1), p.number("__listeners['document:click'].length"))

	p.eval(`var first = __click('https://news.example/')`)
	assert.True(t, p.truthy("first.prevented"))
	require.Equal(t, int64(3), p.number("__sent.length"))
	assert.Equal(t, "openLink", p.text("__sent[2].action"))
	assert.Equal(t, "https://news.example/", p.text("__sent[2].payload.href"))

	// A second click while the first is in flight is swallowed.
	p.eval(`var second = __click('https://other.example/')`)
	assert.True(t, p.truthy("second.prevented"))
	assert.Equal(t, int64(3), p.number("__sent.length"))

	p.eval(`__reply(2, { preventDefault: true, outcome: 'opened', tabId: 'tab-2' })`)
	assert.Equal(t, "https://example.com/?TakeMeHomeSameTab=true", p.text("window.location.href"))

	p.eval(`__click('https://third.example/')`)
	assert.Equal(t, int64(4), p.number("__sent.length"))
}

func TestPageScript_LinksNotIntercepted(t *testing.T) {
	tests := []struct {
		name   string
		target string
		rel    string
	}{
		{name: "self target", target: "_self"},
		{name: "noopener", rel: "noopener"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := loadPage(t, "https://example.com/?TakeMeHomeSameTab=true")
			p.constants()
			p.eval(`__reply(1, { success: true, tabId: 'tab-1' })`)

			require.NoError(t, p.vm.Set("__target", tt.target))
			require.NoError(t, p.vm.Set("__rel", tt.rel))
			p.eval(`var ev = __click('https://news.example/', __target, __rel)`)

			assert.False(t, p.truthy("ev.prevented"))
			assert.Equal(t, int64(2), p.number("__sent.length"))
		})
	}
}

func TestPageScript_IgnoredClickNavigatesInPlace(t *testing.T) {
	p := loadPage(t, "https://example.com/?TakeMeHomeSameTab=true")
	p.constants()
	p.eval(`__reply(1, { success: true, tabId: 'tab-1' })`)

	p.eval(`__click('https://news.example/')`)
	p.eval(`__reply(2, { preventDefault: false, outcome: 'ignored' })`)

	assert.Equal(t, "https://news.example/", p.text("window.location.href"))
}

func TestPageScript_NotMarkedWhenRejected(t *testing.T) {
	p := loadPage(t, "https://example.com/?TakeMeHomeSameTab=true")
	p.constants()
	p.eval(`__reply(1, { success: false, error: 'not called from a tab' })`)

	assert.True(t, p.eval(`__listeners['document:click'] === undefined`).ToBoolean())
}

func TestPageScript_OrdinaryPageStaysQuiet(t *testing.T) {
	p := loadPage(t, "https://elsewhere.example/")
	p.constants()

	assert.Equal(t, int64(1), p.number("__sent.length"))
	assert.Equal(t, int64(0), p.number("__timers.length"))
}

func TestPageScript_FocusHelpers(t *testing.T) {
	p := loadPage(t, "https://elsewhere.example/")

	assert.False(t, p.truthy("window.__takeMeHome.isUserTyping()"))
	assert.True(t, p.truthy("window.__takeMeHome.ensurePageFocus()"))
	assert.True(t, p.truthy("window.__focused"))

	p.eval(`document.activeElement = { tagName: 'INPUT', value: 'half a query' }`)
	assert.True(t, p.truthy("window.__takeMeHome.isUserTyping()"))
	assert.False(t, p.truthy("window.__takeMeHome.ensurePageFocus()"))

	p.eval(`document.activeElement = { tagName: 'TEXTAREA', value: '' }`)
	assert.False(t, p.truthy("window.__takeMeHome.isUserTyping()"))
}

func TestPageScript_InjectedOnce(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")

	src, err := RenderPageScript(DefaultPageConfig())
	require.NoError(t, err)
	_, err = p.vm.RunString(src)
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.number("__sent.length"))
}

func TestPageScript_UnknownResponseIgnored(t *testing.T) {
	p := loadPage(t, "chrome://newtab/")

	assert.False(t, p.truthy(`window.__takeMeHome.resolve({ requestId: 'nope', success: true })`))
	assert.False(t, p.truthy(`window.__takeMeHome.resolve(null)`))
}

func TestResolveExpression(t *testing.T) {
	expr, err := resolveExpression(messaging.NewSuccessResponse("r7", map[string]bool{"exists": true}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(expr, "window.__takeMeHome && window.__takeMeHome.resolve("))
	assert.Contains(t, expr, `"requestId":"r7"`)
	assert.Contains(t, expr, `"exists":true`)
}
