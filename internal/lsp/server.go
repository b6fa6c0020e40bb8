package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"shaderlex/internal/version"
)

const lsName = "shaderlex"

var log = commonlog.GetLogger("shaderlex.lsp")

// Options configures the language server.
type Options struct {
	MaxDiagnostics int // per document, 0 = unlimited
	Debug          bool
}

type document struct {
	version protocol.Integer
	text    string
	result  *analysis
}

// Server keeps open documents and answers requests from their token streams.
type Server struct {
	opts    Options
	handler protocol.Handler

	mu   sync.Mutex
	docs map[string]*document
}

// NewServer builds a server with its protocol handler wired up.
func NewServer(opts Options) *Server {
	s := &Server{opts: opts, docs: make(map[string]*document)}
	s.handler = protocol.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		SetTrace:                       s.setTrace,
		TextDocumentDidOpen:            s.didOpen,
		TextDocumentDidChange:          s.didChange,
		TextDocumentDidClose:           s.didClose,
		TextDocumentSemanticTokensFull: s.semanticTokensFull,
	}
	return s
}

// RunStdio serves the protocol over stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	return glspserver.NewServer(&s.handler, lsName, s.opts.Debug).RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log.Infof("client %s connected", params.ClientInfo.Name)
	}
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncOptions{
		OpenClose: ptr(true),
		Change:    ptr(protocol.TextDocumentSyncKindIncremental),
	}
	capabilities.SemanticTokensProvider = protocol.SemanticTokensOptions{
		Legend: semanticLegend,
		Full:   true,
	}
	v := version.Version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &v,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	s.update(ctx, item.URI, item.Version, item.Text)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	var text string
	if ok {
		text = doc.text
	}
	s.mu.Unlock()
	if !ok {
		log.Warningf("change for unknown document %s", uri)
		return nil
	}
	s.update(ctx, uri, params.TextDocument.Version, applyChanges(text, params.ContentChanges))
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
	publish(ctx, uri, nil, []protocol.Diagnostic{})
	return nil
}

// update re-tokenizes a document and publishes its diagnostics.
func (s *Server) update(ctx *glsp.Context, uri string, ver protocol.Integer, text string) {
	result := analyze(uri, text, s.opts.MaxDiagnostics)
	s.mu.Lock()
	s.docs[uri] = &document{version: ver, text: text, result: result}
	s.mu.Unlock()

	v := protocol.UInteger(max(ver, 0)) // #nosec G115 -- clamped to non-negative
	publish(ctx, uri, &v, result.diagnostics(uri))
}

func publish(ctx *glsp.Context, uri string, ver *protocol.UInteger, diags []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     ver,
		Diagnostics: diags,
	})
}

func (s *Server) semanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	s.mu.Lock()
	doc, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("document %q not found", params.TextDocument.URI)
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(doc.result.file, doc.result.tokens),
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
