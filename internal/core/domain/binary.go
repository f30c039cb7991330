package domain

import (
	"bytes"

	"github.com/valyala/bytebufferpool"
	"go.trai.ch/exsd/internal/core/codec"
	"go.trai.ch/zerr"
)

// MarshalBinary encodes d in the persisted index format.
func MarshalBinary(d *ExtensionPointDefinition) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := d.Save(codec.NewWriter(buf)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrEncodeFailed.Error()), "point", d.Point())
	}
	return bytes.Clone(buf.B), nil
}

// UnmarshalBinary decodes a definition produced by MarshalBinary.
func UnmarshalBinary(data []byte) (*ExtensionPointDefinition, error) {
	r := bytes.NewReader(data)
	d, err := ReadExtensionPointDefinition(codec.NewReader(r))
	if err != nil {
		return nil, zerr.Wrap(err, ErrDecodeFailed.Error())
	}
	if r.Len() != 0 {
		return nil, zerr.With(ErrDecodeFailed, "trailing_bytes", r.Len())
	}
	return d, nil
}

// Save writes d as plugin, id, name, includes, optional extension and elements.
func (d *ExtensionPointDefinition) Save(w *codec.Writer) error {
	if err := w.WriteUTF(d.Plugin); err != nil {
		return err
	}
	if err := w.WriteUTF(d.ID); err != nil {
		return err
	}
	if err := w.WriteUTF(d.Name); err != nil {
		return err
	}
	if err := w.WriteStrings(d.Includes); err != nil {
		return err
	}
	if err := codec.WriteOptional(w, d.Extension != nil, d.Extension, saveElement); err != nil {
		return err
	}
	return codec.WriteSlice(w, d.Elements, saveElement)
}

// ReadExtensionPointDefinition reads a definition written by Save.
func ReadExtensionPointDefinition(r *codec.Reader) (*ExtensionPointDefinition, error) {
	var (
		d   ExtensionPointDefinition
		err error
	)
	if d.Plugin, err = r.ReadUTF(); err != nil {
		return nil, err
	}
	if d.ID, err = r.ReadUTF(); err != nil {
		return nil, err
	}
	if d.Name, err = r.ReadUTF(); err != nil {
		return nil, err
	}
	if d.Includes, err = r.ReadStrings(); err != nil {
		return nil, err
	}
	ext, ok, err := codec.ReadOptional(r, ReadElementDefinition)
	if err != nil {
		return nil, err
	}
	if ok {
		d.Extension = &ext
	}
	if d.Elements, err = codec.ReadSlice(r, ReadElementDefinition); err != nil {
		return nil, err
	}
	return &d, nil
}

func saveElement(w *codec.Writer, e *ElementDefinition) error {
	return e.Save(w)
}

// Save writes e as name, optional type, deprecated, refs and attributes.
func (e *ElementDefinition) Save(w *codec.Writer) error {
	if err := w.WriteUTF(e.Name); err != nil {
		return err
	}
	if err := w.WriteOptionalUTF(e.Type); err != nil {
		return err
	}
	if err := w.WriteBool(e.Deprecated); err != nil {
		return err
	}
	if err := codec.WriteSlice(w, e.ElementRefs, func(w *codec.Writer, ref *ElementRefDefinition) error {
		return ref.Save(w)
	}); err != nil {
		return err
	}
	return codec.WriteSlice(w, e.Attributes, func(w *codec.Writer, a *AttributeDefinition) error {
		return a.Save(w)
	})
}

// ReadElementDefinition reads an element written by ElementDefinition.Save.
func ReadElementDefinition(r *codec.Reader) (ElementDefinition, error) {
	var (
		e   ElementDefinition
		err error
	)
	if e.Name, err = r.ReadUTF(); err != nil {
		return e, err
	}
	if e.Type, err = r.ReadOptionalUTF(); err != nil {
		return e, err
	}
	if e.Deprecated, err = r.ReadBool(); err != nil {
		return e, err
	}
	if e.ElementRefs, err = codec.ReadSlice(r, ReadElementRefDefinition); err != nil {
		return e, err
	}
	if e.Attributes, err = codec.ReadSlice(r, ReadAttributeDefinition); err != nil {
		return e, err
	}
	return e, nil
}

// Save writes the reference as ref, minOccurs, maxOccurs.
func (ref *ElementRefDefinition) Save(w *codec.Writer) error {
	if err := w.WriteUTF(ref.Ref); err != nil {
		return err
	}
	if err := w.WriteInt32(ref.MinOccurs); err != nil {
		return err
	}
	return w.WriteInt32(ref.MaxOccurs)
}

// ReadElementRefDefinition reads a reference written by ElementRefDefinition.Save.
func ReadElementRefDefinition(r *codec.Reader) (ElementRefDefinition, error) {
	var (
		ref ElementRefDefinition
		err error
	)
	if ref.Ref, err = r.ReadUTF(); err != nil {
		return ref, err
	}
	if ref.MinOccurs, err = r.ReadInt32(); err != nil {
		return ref, err
	}
	if ref.MaxOccurs, err = r.ReadInt32(); err != nil {
		return ref, err
	}
	return ref, nil
}

// Save writes the attribute fields in their persisted order.
func (a *AttributeDefinition) Save(w *codec.Writer) error {
	if err := w.WriteUTF(a.Name); err != nil {
		return err
	}
	for _, s := range []*string{a.Type, a.Use, a.Value, a.Kind, a.BasedOn} {
		if err := w.WriteOptionalUTF(s); err != nil {
			return err
		}
	}
	if err := w.WriteBool(a.Deprecated); err != nil {
		return err
	}
	if err := w.WriteOptionalUTF(a.SimpleBaseType); err != nil {
		return err
	}
	return codec.WriteOptional(w, a.SimpleEnumeration != nil, a.SimpleEnumeration, (*codec.Writer).WriteStrings)
}

// ReadAttributeDefinition reads an attribute written by AttributeDefinition.Save.
func ReadAttributeDefinition(r *codec.Reader) (AttributeDefinition, error) {
	var (
		a   AttributeDefinition
		err error
	)
	if a.Name, err = r.ReadUTF(); err != nil {
		return a, err
	}
	for _, dst := range []**string{&a.Type, &a.Use, &a.Value, &a.Kind, &a.BasedOn} {
		if *dst, err = r.ReadOptionalUTF(); err != nil {
			return a, err
		}
	}
	if a.Deprecated, err = r.ReadBool(); err != nil {
		return a, err
	}
	if a.SimpleBaseType, err = r.ReadOptionalUTF(); err != nil {
		return a, err
	}
	enum, ok, err := codec.ReadOptional(r, (*codec.Reader).ReadStrings)
	if err != nil {
		return a, err
	}
	if ok {
		if enum == nil {
			enum = []string{}
		}
		a.SimpleEnumeration = enum
	}
	return a, nil
}
