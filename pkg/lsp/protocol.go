package lsp

import (
	"encoding/json"

	"github.com/walteh/mdwrap/pkg/span"
)

// The subset of the language server protocol that mdwrap speaks, see
// https://microsoft.github.io/language-server-protocol/specifications/specification-current/

type DocumentURI string

type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (r Range) span() span.Range {
	return span.Range{
		Start: span.Position{Line: int(r.Start.Line), Character: int(r.Start.Character)},
		End:   span.Position{Line: int(r.End.Line), Character: int(r.End.Character)},
	}
}

func fromSpanPosition(p span.Position) Position {
	return Position{Line: uint32(p.Line), Character: uint32(p.Character)}
}

type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

type VersionedTextDocumentIdentifier struct {
	URI     DocumentURI `json:"uri"`
	Version int32       `json:"version"`
}

type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int32       `json:"version"`
	Text       string      `json:"text"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeParams struct {
	ProcessID  int         `json:"processId,omitempty"`
	RootURI    DocumentURI `json:"rootUri,omitempty"`
	Locale     string      `json:"locale,omitempty"`
	ClientInfo *ClientInfo `json:"clientInfo,omitempty"`
}

type TextDocumentSyncKind int

const (
	SyncNone TextDocumentSyncKind = 0
	SyncFull TextDocumentSyncKind = 1
)

type ExecuteCommandOptions struct {
	Commands []string `json:"commands"`
}

type ServerCapabilities struct {
	TextDocumentSync       TextDocumentSyncKind   `json:"textDocumentSync"`
	CodeActionProvider     bool                   `json:"codeActionProvider"`
	ExecuteCommandProvider *ExecuteCommandOptions `json:"executeCommandProvider,omitempty"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent is always a full-text change; the server
// only offers full sync.
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type CodeActionContext struct {
	Only []string `json:"only,omitempty"`
}

type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

type Command struct {
	Title     string `json:"title"`
	Command   string `json:"command"`
	Arguments []any  `json:"arguments,omitempty"`
}

const CodeActionRefactorRewrite = "refactor.rewrite"

type CodeAction struct {
	Title   string   `json:"title"`
	Kind    string   `json:"kind,omitempty"`
	Command *Command `json:"command,omitempty"`
}

type ExecuteCommandParams struct {
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

type WorkspaceEdit struct {
	Changes map[DocumentURI][]TextEdit `json:"changes"`
}

type ApplyWorkspaceEditParams struct {
	Label string        `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

type ApplyWorkspaceEditResult struct {
	Applied       bool   `json:"applied"`
	FailureReason string `json:"failureReason,omitempty"`
}

type ShowDocumentParams struct {
	URI       DocumentURI `json:"uri"`
	External  bool        `json:"external,omitempty"`
	TakeFocus bool        `json:"takeFocus,omitempty"`
	Selection *Range      `json:"selection,omitempty"`
}

type ShowDocumentResult struct {
	Success bool `json:"success"`
}

type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// mdwrap extensions

// CommandArguments is the single argument of every mdwrap command.
type CommandArguments struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// EditResult is what workspace/executeCommand returns for a transform: the
// selection it left behind, as UTF-16 offsets.
type EditResult struct {
	SelStart int `json:"selStart"`
	SelEnd   int `json:"selEnd"`
}

type Cursor struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type SelectionChangedParams struct {
	URI      DocumentURI `json:"uri"`
	Range    Range       `json:"range"`
	Focused  bool        `json:"focused"`
	Viewport float64     `json:"viewport"`
	Width    float64     `json:"width"`
	// Cursor is nil when the client has no caret to report.
	Cursor *Cursor `json:"cursor,omitempty"`
}

type BlurParams struct {
	URI DocumentURI `json:"uri"`
	// Focused is true when focus moved somewhere still inside the document.
	Focused bool `json:"focused"`
}

type KeyDownParams struct {
	URI DocumentURI `json:"uri"`
	Key string      `json:"key"`
}

type ScrollParams struct {
	URI DocumentURI `json:"uri,omitempty"`
}

type TransitionEndParams struct {
	URI DocumentURI `json:"uri,omitempty"`
}

const (
	MethodSelectionChanged = "mdwrap/selectionChanged"
	MethodScroll           = "mdwrap/scroll"
	MethodBlur             = "mdwrap/blur"
	MethodKeyDown          = "mdwrap/keyDown"
	MethodTransitionEnd    = "mdwrap/transitionEnd"
	MethodToolbar          = "mdwrap/toolbar"

	CommandToggleToolbar = "toggle-toolbar"
)
