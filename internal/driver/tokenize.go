package driver

import (
	"fmt"
	"time"

	"github.com/tliron/commonlog"

	"shaderlex/internal/diag"
	"shaderlex/internal/lexer"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

var log = commonlog.GetLogger("shaderlex.driver")

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Cached  bool
}

// Tokenize loads path and tokenizes it. The token stream ends with EOF.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	stop := opts.Timer.Track("load")
	fileID, err := fs.Load(path)
	stop()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return TokenizeFile(fs, fs.Get(fileID), opts), nil
}

// TokenizeFile tokenizes a file that is already part of fs.
func TokenizeFile(fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	tokens, cached := tokenizeCached(file, bag, opts)
	if opts.SkipTrivia {
		tokens = withoutTrivia(tokens)
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Cached:  cached,
	}
}

// tokenizeCached returns the full token stream of file, from the memory
// or disk cache when possible. Diagnostics go to bag either way.
func tokenizeCached(file *source.File, bag *diag.Bag, opts Options) ([]token.Token, bool) {
	if payload, ok := opts.Memory.Get(file); ok {
		opts.Timer.Add("memory", 0)
		return payload.restore(file.ID, bag), true
	}

	key := CacheKey(file.Hash)
	if opts.Cache != nil {
		started := time.Now()
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		opts.Timer.Add("cache", time.Since(started))
		switch {
		case err != nil:
			log.Warningf("token cache read for %s: %s", file.Path, err.Error())
		case ok && payload.Schema == diskCacheSchemaVersion && payload.ContentHash == file.Hash:
			tokens := payload.restore(file.ID, bag)
			opts.Memory.Put(&payload)
			emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: StatusWorking, Elapsed: time.Since(started)})
			return tokens, true
		}
	}

	// the caches keep every diagnostic, bag applies its own limit
	all := diag.NewBag(0)
	stop := opts.Timer.Track("lex")
	tokens := lexTokens(file, diag.NewDedupReporter(diag.BagReporter{Bag: all}))
	stop()
	for _, d := range all.Items() {
		bag.Add(d)
	}

	if opts.Cache == nil && opts.Memory == nil {
		return tokens, false
	}
	payload := newDiskPayload(file, tokens, all.Items())
	opts.Memory.Put(payload)
	if opts.Cache != nil {
		stop := opts.Timer.Track("cache")
		if err := opts.Cache.Put(key, payload); err != nil {
			log.Warningf("token cache write for %s: %s", file.Path, err.Error())
		}
		stop()
	}
	return tokens, false
}

func lexTokens(file *source.File, r diag.Reporter) []token.Token {
	return lexer.Tokenize(file, lexer.Options{OnError: lexer.ReportTo(r)})
}

// withoutTrivia keeps significant tokens and the final EOF.
func withoutTrivia(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsSkipped() {
			out = append(out, tok)
		}
	}
	return out
}
