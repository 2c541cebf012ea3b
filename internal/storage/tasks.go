package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todolist/internal/task"
)

// DefaultKey is the entry the task collection is stored under.
const DefaultKey = "tasks"

const tasksSchemaURL = "tasks.schema.json"

const tasksSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["text"],
		"properties": {
			"text": {"type": "string"},
			"completed": {"type": "boolean"},
			"dueDate": {"type": ["string", "null"]}
		}
	}
}`

// KV is the durable key-value surface the task store persists through.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// TaskStore persists the whole task collection as one JSON entry.
type TaskStore struct {
	kv     KV
	key    string
	schema *jsonschema.Schema
	logger *log.Logger
}

func NewTaskStore(kv KV, key string, logger *log.Logger) (*TaskStore, error) {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(tasksSchemaURL, strings.NewReader(tasksSchema)); err != nil {
		return nil, fmt.Errorf("add tasks schema: %w", err)
	}
	schema, err := compiler.Compile(tasksSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile tasks schema: %w", err)
	}
	return &TaskStore{kv: kv, key: key, schema: schema, logger: logger}, nil
}

// Load reads the stored collection and sorts it by due date. Missing or
// malformed content loads as an empty collection; only storage failures are
// returned as errors.
func (s *TaskStore) Load(ascending bool) ([]task.Task, error) {
	raw, err := s.kv.Get(s.key)
	if errors.Is(err, ErrNotFound) {
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	tasks, err := s.decode(raw)
	if err != nil {
		s.logger.Warn("discarding malformed task data", "key", s.key, "err", err)
		return []task.Task{}, nil
	}
	s.logger.Debug("loaded tasks", "count", len(tasks), "ascending", ascending)
	return task.SortByDueDate(tasks, ascending), nil
}

// Save overwrites the stored collection with tasks, in the given order.
func (s *TaskStore) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "count", len(tasks))
	return nil
}

func (s *TaskStore) decode(raw string) ([]task.Task, error) {
	if strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "null" {
		return []task.Task{}, nil
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var tasks []task.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tasks, nil
}
