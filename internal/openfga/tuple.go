// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"github.com/openfga/go-sdk/client"
)

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func (t *Tuple) Values() (string, string, string) {
	return t.User, t.Relation, t.Object
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}

func tupleKeys(tuples ...Tuple) []client.ClientTupleKey {
	keys := make([]client.ClientTupleKey, 0, len(tuples))
	for _, t := range tuples {
		keys = append(keys, client.ClientTupleKey{User: t.User, Relation: t.Relation, Object: t.Object})
	}
	return keys
}

func tupleKeysWithoutCondition(tuples ...Tuple) []client.ClientTupleKeyWithoutCondition {
	keys := make([]client.ClientTupleKeyWithoutCondition, 0, len(tuples))
	for _, t := range tuples {
		keys = append(keys, client.ClientTupleKeyWithoutCondition{User: t.User, Relation: t.Relation, Object: t.Object})
	}
	return keys
}

func contextualTuples(tuples ...Tuple) []client.ClientContextualTupleKey {
	keys := make([]client.ClientContextualTupleKey, 0, len(tuples))
	for _, t := range tuples {
		keys = append(keys, client.ClientContextualTupleKey{User: t.User, Relation: t.Relation, Object: t.Object})
	}
	return keys
}
