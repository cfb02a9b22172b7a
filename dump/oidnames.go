package dump

// Name returns the well-known name for a dotted object identifier, or "" for
// identifiers not in the table. The table covers the identifiers commonly
// seen in X.509 certificates and PKCS structures.
func Name(oid string) string {
	return names[oid]
}

var names = map[string]string{
	// PKCS#1 signature and encryption algorithms
	"1.2.840.113549.1.1.1":  "rsaEncryption",
	"1.2.840.113549.1.1.5":  "sha1WithRSAEncryption",
	"1.2.840.113549.1.1.10": "rsassa-pss",
	"1.2.840.113549.1.1.11": "sha256WithRSAEncryption",
	"1.2.840.113549.1.1.12": "sha384WithRSAEncryption",
	"1.2.840.113549.1.1.13": "sha512WithRSAEncryption",

	// PKCS#7/CMS content types
	"1.2.840.113549.1.7.1": "data",
	"1.2.840.113549.1.7.2": "signedData",
	"1.2.840.113549.1.7.3": "envelopedData",

	// PKCS#9 attributes
	"1.2.840.113549.1.9.1": "emailAddress",
	"1.2.840.113549.1.9.3": "contentType",
	"1.2.840.113549.1.9.4": "messageDigest",
	"1.2.840.113549.1.9.5": "signingTime",

	// ANSI X9.62 elliptic curve cryptography
	"1.2.840.10045.2.1":     "ecPublicKey",
	"1.2.840.10045.3.1.7":   "prime256v1",
	"1.2.840.10045.4.3.2":   "ecdsa-with-SHA256",
	"1.2.840.10045.4.3.3":   "ecdsa-with-SHA384",
	"1.2.840.10045.4.3.4":   "ecdsa-with-SHA512",
	"1.3.132.0.34":          "secp384r1",
	"1.3.132.0.35":          "secp521r1",
	"1.3.101.110":           "x25519",
	"1.3.101.112":           "ed25519",

	// X.520 distinguished name attributes
	"2.5.4.3":  "commonName",
	"2.5.4.5":  "serialNumber",
	"2.5.4.6":  "countryName",
	"2.5.4.7":  "localityName",
	"2.5.4.8":  "stateOrProvinceName",
	"2.5.4.10": "organizationName",
	"2.5.4.11": "organizationalUnitName",

	// X.509 certificate extensions
	"2.5.29.14": "subjectKeyIdentifier",
	"2.5.29.15": "keyUsage",
	"2.5.29.17": "subjectAltName",
	"2.5.29.19": "basicConstraints",
	"2.5.29.20": "cRLNumber",
	"2.5.29.31": "cRLDistributionPoints",
	"2.5.29.32": "certificatePolicies",
	"2.5.29.35": "authorityKeyIdentifier",
	"2.5.29.37": "extKeyUsage",

	// PKIX
	"1.3.6.1.5.5.7.1.1":  "authorityInfoAccess",
	"1.3.6.1.5.5.7.3.1":  "serverAuth",
	"1.3.6.1.5.5.7.3.2":  "clientAuth",
	"1.3.6.1.5.5.7.3.3":  "codeSigning",
	"1.3.6.1.5.5.7.3.8":  "timeStamping",
	"1.3.6.1.5.5.7.3.9":  "ocspSigning",
	"1.3.6.1.5.5.7.48.1": "ocsp",
	"1.3.6.1.5.5.7.48.2": "caIssuers",

	// NIST hash algorithms
	"2.16.840.1.101.3.4.2.1": "sha-256",
	"2.16.840.1.101.3.4.2.2": "sha-384",
	"2.16.840.1.101.3.4.2.3": "sha-512",
}
