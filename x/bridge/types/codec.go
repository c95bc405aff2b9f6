package types

import (
	"reflect"

	"github.com/near/borsh-go"
)

// Records are kept in the store in borsh layout. Pointers are dereferenced
// before encoding so that Marshal(&x) and Marshal(x) produce the same bytes.

func Marshal(v interface{}) ([]byte, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		v = rv.Elem().Interface()
	}
	return borsh.Serialize(v)
}

func Unmarshal(bz []byte, ptr interface{}) error {
	return borsh.Deserialize(ptr, bz)
}

func MustMarshal(v interface{}) []byte {
	bz, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func MustUnmarshal(bz []byte, ptr interface{}) {
	if err := Unmarshal(bz, ptr); err != nil {
		panic(err)
	}
}
