package fsm // import "github.com/zenyway/fsm"

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a spec from a YAML document of the form
//
//	enabled:
//	  CLICK: [disabled, copy]
//	  PROPS: enabled
//	disabled:
//	  ENABLE: enabled
//
// A transition is either a target state name or a two item sequence of target
// and payload.  The payload may be any YAML value.
func DecodeYAML(buff []byte) (AutomataSpec, error) {
	raw := map[string]map[string]yaml.Node{}
	if err := yaml.Unmarshal(buff, &raw); err != nil {
		return nil, errors.Wrap(err, "decode yaml spec")
	}

	states := make([]string, 0, len(raw))
	for state := range raw {
		states = append(states, state)
	}
	sort.Strings(states)

	spec := AutomataSpec{}
	for _, state := range states {
		commands := Commands{}
		for command, node := range raw[state] {
			node := node
			t, err := yamlTransition(&node)
			if err != nil {
				return nil, errors.Wrapf(err, "state=%q, command=%q", state, command)
			}
			commands[command] = t
		}
		spec[state] = commands
	}
	return spec, nil
}

func yamlTransition(node *yaml.Node) (t Transition, err error) {
	switch node.Kind {
	case yaml.ScalarNode:
		err = node.Decode(&t.Target)
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			err = errors.Errorf("line %d: transition must be [target, payload], got %d items", node.Line, len(node.Content))
			return
		}
		if err = node.Content[0].Decode(&t.Target); err != nil {
			return
		}
		err = node.Content[1].Decode(&t.Payload)
	default:
		err = errors.Errorf("line %d: transition must be a state name or [target, payload]", node.Line)
	}
	if err == nil && t.Target == "" {
		err = errors.Errorf("line %d: empty target state", node.Line)
	}
	return
}

// DecodeJSON reads a spec from a JSON document.  Transitions follow the same
// rules as DecodeYAML: "target" or ["target", payload].
func DecodeJSON(buff []byte) (AutomataSpec, error) {
	raw := map[string]map[string]json.RawMessage{}
	if err := json.Unmarshal(buff, &raw); err != nil {
		return nil, errors.Wrap(err, "decode json spec")
	}

	states := make([]string, 0, len(raw))
	for state := range raw {
		states = append(states, state)
	}
	sort.Strings(states)

	spec := AutomataSpec{}
	for _, state := range states {
		commands := Commands{}
		for command, msg := range raw[state] {
			t, err := jsonTransition(msg)
			if err != nil {
				return nil, errors.Wrapf(err, "state=%q, command=%q", state, command)
			}
			commands[command] = t
		}
		spec[state] = commands
	}
	return spec, nil
}

func jsonTransition(msg json.RawMessage) (t Transition, err error) {
	if err = json.Unmarshal(msg, &t.Target); err == nil {
		if t.Target == "" {
			err = errors.New("empty target state")
		}
		return
	}

	pair := []json.RawMessage{}
	if err = json.Unmarshal(msg, &pair); err != nil {
		err = errors.Errorf("transition must be a state name or [target, payload]: %s", msg)
		return
	}
	if len(pair) != 2 {
		err = errors.Errorf("transition must be [target, payload], got %d items", len(pair))
		return
	}
	if err = json.Unmarshal(pair[0], &t.Target); err != nil {
		err = errors.Wrap(err, "target state")
		return
	}
	if t.Target == "" {
		err = errors.New("empty target state")
		return
	}
	err = errors.Wrap(json.Unmarshal(pair[1], &t.Payload), "payload")
	return
}

// LoadFile reads a spec from a .yaml, .yml or .json file.
func LoadFile(path string) (AutomataSpec, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read spec %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(buff)
	case ".json":
		return DecodeJSON(buff)
	default:
		return nil, errors.Errorf("unsupported spec format %q: %s", ext, path)
	}
}
