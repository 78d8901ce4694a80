package cryptoalg

// PublicExponent is the fixed public exponent e of every generated key pair.
const PublicExponent = 65537

// MinPrimeBits is the smallest prime size accepted for key generation.
const MinPrimeBits = 8

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// KeySeparator joins the two base64 integers of a serialized key.
const KeySeparator = "-"
