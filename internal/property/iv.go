package property

// IVKey is the identifier of the synthetic initialization vector property.
const IVKey = "encryptionKeyIV"

// IV publishes the content hash used to encrypt the file's secrets.
type IV struct {
	Hash string
}

// NewIV wraps a hex digest.
func NewIV(hash string) *IV { return &IV{Hash: hash} }

// Key implements Property.
func (iv *IV) Key() string { return IVKey }

// TypeName implements Property.
func (iv *IV) TypeName() string { return "[UInt8]" }

// AssociatedProperty implements Property.
func (iv *IV) AssociatedProperty() string { return "" }

// Value implements Property.
func (iv *IV) Value(Context, string) (string, string, error) {
	return byteArray([]byte(iv.Hash)), "", nil
}

// Declaration implements Property. The IV is always a stored constant.
func (iv *IV) Declaration(ctx Context, _ string) (string, error) {
	ctx.NonObjC = false
	value, _, _ := iv.Value(ctx, "")

	return declaration(ctx, common{key: IVKey}, iv.TypeName(), value, false), nil
}
