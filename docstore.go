package tops

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/docstore"
)

// KeyField is the docstore field under which drivers built on
// gocloud.dev docstore surface the native document key. Queries for the
// conventional "_id" id_field are routed to it.
const KeyField = "id"

// DocstoreTop runs the top lookup for q against a docstore collection. It
// is the shared query path for drivers built on gocloud.dev docstore.
//
// The first document whose id field equals the requester id decides the
// result: its states field supplies the top entries and its environment
// field selects the environment, falling back to DefaultEnvironment. No
// matching document, or a document without the states field, yields an
// empty Result.
func DocstoreTop(ctx context.Context, coll *docstore.Collection, q Query) (Result, error) {
	field := q.IDField
	if field == defaultIDField {
		field = KeyField
	}

	iter := coll.Query().Where(docstore.FieldPath(field), EqualOp, q.RequesterID).Limit(1).Get(ctx)
	defer iter.Stop()

	doc := map[string]any{}
	err := iter.Next(ctx, doc)
	if err == io.EOF {
		return Result{}, nil
	} else if err != nil {
		return nil, err
	}

	raw, ok := doc[q.StatesField]
	if !ok {
		return Result{}, nil
	}

	environment := DefaultEnvironment
	if env, ok := doc[q.EnvironmentField].(string); ok && env != "" {
		environment = env
	}

	return Result{environment: stringList(raw)}, nil
}

// stringList normalizes a decoded states value to a string slice. Docstore
// decodes lists into []interface{}; non-string entries are formatted.
func stringList(v any) []string {
	switch states := v.(type) {
	case []string:
		return states
	case []any:
		out := make([]string, 0, len(states))
		for _, s := range states {
			if str, ok := s.(string); ok {
				out = append(out, str)
			} else {
				out = append(out, fmt.Sprint(s))
			}
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(states)}
	}
}
