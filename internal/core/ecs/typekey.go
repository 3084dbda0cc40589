package ecs

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// TypeKey identifies a component, singleton or event type for the lifetime
// of the process.
type TypeKey uint64

var typeKeys = struct {
	sync.RWMutex
	byType map[reflect.Type]TypeKey
	byKey  map[TypeKey]reflect.Type
}{
	byType: make(map[reflect.Type]TypeKey),
	byKey:  make(map[TypeKey]reflect.Type),
}

// KeyOf returns the key of T. Keys are the xxhash of the qualified type
// name; two distinct types that print the same (types local to different
// functions, for instance) are separated by salting the name.
func KeyOf[T any]() TypeKey {
	return keyOfType(reflect.TypeFor[T]())
}

// TypeName returns the printable name registered for key.
func TypeName(key TypeKey) string {
	typeKeys.RLock()
	defer typeKeys.RUnlock()
	if t, ok := typeKeys.byKey[key]; ok {
		return t.String()
	}
	return "unknown(" + strconv.FormatUint(uint64(key), 16) + ")"
}

func keyOfType(t reflect.Type) TypeKey {
	typeKeys.RLock()
	key, ok := typeKeys.byType[t]
	typeKeys.RUnlock()
	if ok {
		return key
	}

	typeKeys.Lock()
	defer typeKeys.Unlock()
	if key, ok = typeKeys.byType[t]; ok {
		return key
	}

	name := t.PkgPath() + ":" + t.String()
	key = TypeKey(xxhash.Sum64String(name))
	for salt := 1; ; salt++ {
		if _, taken := typeKeys.byKey[key]; !taken {
			break
		}
		key = TypeKey(xxhash.Sum64String(name + "#" + strconv.Itoa(salt)))
	}

	typeKeys.byType[t] = key
	typeKeys.byKey[key] = t
	return key
}
