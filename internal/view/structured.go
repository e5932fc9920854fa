package view

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// message, contactList, and commandList are the documents the structured
// renderers emit. Kind tells a consumer which one it is reading.
type message struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

type contactList struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Contacts []contact `json:"contacts" yaml:"contacts"`
}

type commandList struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Commands []Command `json:"commands" yaml:"commands"`
}

const (
	kindMessage  = "message"
	kindContacts = "contacts"
	kindCommands = "commands"
)

// JSON writes one JSON document per line for every call.
type JSON struct {
	enc *json.Encoder
}

// NewJSON returns a JSON display writing to w.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc}
}

func (d *JSON) DisplayMessage(text string) {
	_ = d.enc.Encode(message{Kind: kindMessage, Message: text})
}

func (d *JSON) DisplayContacts(records []*types.Record) {
	_ = d.enc.Encode(contactList{Kind: kindContacts, Contacts: toContacts(records)})
}

func (d *JSON) DisplayCommands() {
	_ = d.enc.Encode(commandList{Kind: kindCommands, Commands: Commands})
}

// YAML writes one YAML document per call, separated by "---".
type YAML struct {
	w io.Writer
}

// NewYAML returns a YAML display writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (d *YAML) encode(v any) {
	enc := yaml.NewEncoder(d.w)
	enc.SetIndent(2)
	_, _ = io.WriteString(d.w, "---\n")
	_ = enc.Encode(v)
	_ = enc.Close()
}

func (d *YAML) DisplayMessage(text string) {
	d.encode(message{Kind: kindMessage, Message: text})
}

func (d *YAML) DisplayContacts(records []*types.Record) {
	d.encode(contactList{Kind: kindContacts, Contacts: toContacts(records)})
}

func (d *YAML) DisplayCommands() {
	d.encode(commandList{Kind: kindCommands, Commands: Commands})
}
