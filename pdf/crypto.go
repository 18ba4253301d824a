// seehuhn.de/go/pdfmarkup - PDF markup annotations and their appearance streams
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/xdg-go/stringprep"
)

// An Encryptor transforms the bytes of a string or stream belonging to the
// indirect object ref.  Implementations may modify buf in place and may
// return buf.
type Encryptor interface {
	EncryptBytes(ref Reference, buf []byte) ([]byte, error)
}

// Cipher selects the encryption scheme of the standard security handler.
type Cipher int

const (
	// CipherRC4 uses RC4 with a 128 bit key (security handler revision 3).
	CipherRC4 Cipher = iota + 1

	// CipherAES128 uses AES-128 in CBC mode (security handler revision 4).
	CipherAES128

	// CipherAES256 uses AES-256 in CBC mode (security handler revision 6).
	CipherAES256
)

func (c Cipher) String() string {
	switch c {
	case CipherRC4:
		return "RC4-128"
	case CipherAES128:
		return "AES-128"
	case CipherAES256:
		return "AES-256"
	default:
		return fmt.Sprintf("cipher#%d", int(c))
	}
}

// EncryptOptions configures the standard security handler.
type EncryptOptions struct {
	// UserPassword is needed to open the document.
	// The empty string allows to open the document without a password.
	UserPassword string

	// OwnerPassword grants full access.  If this is empty, the
	// user password is used.
	OwnerPassword string

	// Permissions lists the operations allowed with user access.
	Permissions Perm

	// Cipher selects the encryption scheme.
	// If this is zero, CipherAES128 is used.
	Cipher Cipher

	// ID is the first element of the file identifier in the trailer.
	// If this is nil, a random identifier is generated.
	ID []byte
}

// StandardEncryptor implements the write side of the PDF standard security
// handler, as described in section 7.6.4 of ISO 32000-2:2020.
type StandardEncryptor struct {
	cipher Cipher

	// R is the revision of the standard security handler.
	R int

	id []byte

	o, u   []byte
	oe, ue []byte
	perms  []byte
	p      uint32

	keyBytes int
	key      []byte

	rand io.Reader
}

var _ Encryptor = (*StandardEncryptor)(nil)

// NewStandardEncryptor creates a pre-authenticated security handler for a
// new PDF file.
func NewStandardEncryptor(opt *EncryptOptions) (*StandardEncryptor, error) {
	if opt == nil {
		opt = &EncryptOptions{}
	}
	userPwd := opt.UserPassword
	ownerPwd := opt.OwnerPassword
	if ownerPwd == "" {
		ownerPwd = userPwd
	}

	sec := &StandardEncryptor{
		cipher: opt.Cipher,
		p:      stdSecPermToP(opt.Permissions),
		rand:   rand.Reader,
	}
	if sec.cipher == 0 {
		sec.cipher = CipherAES128
	}

	sec.id = opt.ID
	if sec.id == nil {
		sec.id = make([]byte, 16)
		_, err := io.ReadFull(sec.rand, sec.id)
		if err != nil {
			return nil, err
		}
	}

	switch sec.cipher {
	case CipherRC4:
		sec.R = 3
		sec.keyBytes = 16
	case CipherAES128:
		sec.R = 4
		sec.keyBytes = 16
	case CipherAES256:
		sec.R = 6
		sec.keyBytes = 32
	default:
		return nil, fmt.Errorf("unsupported cipher %s", sec.cipher)
	}

	switch sec.R {
	case 3, 4:
		paddedUserPwd, err := padPasswd(userPwd)
		if err != nil {
			return nil, err
		}
		paddedOwnerPwd, err := padPasswd(ownerPwd)
		if err != nil {
			return nil, err
		}
		sec.o = sec.computeO(paddedUserPwd, paddedOwnerPwd)
		sec.key = sec.computeFileEncryptionKey(paddedUserPwd)
		sec.u = sec.computeU(sec.key)
	case 6:
		utf8UserPwd, err := utf8Passwd(userPwd)
		if err != nil {
			return nil, err
		}
		utf8OwnerPwd, err := utf8Passwd(ownerPwd)
		if err != nil {
			return nil, err
		}
		sec.key = make([]byte, 32)
		_, err = io.ReadFull(sec.rand, sec.key)
		if err != nil {
			return nil, err
		}
		sec.u, sec.ue, err = sec.computeUAndUE(utf8UserPwd)
		if err != nil {
			return nil, err
		}
		sec.o, sec.oe, err = sec.computeOAndOE(utf8OwnerPwd)
		if err != nil {
			return nil, err
		}
		sec.perms = sec.computePerms()
	}

	return sec, nil
}

// ID returns the file identifier used to derive the encryption key.
// This must be written as the first element of the ID array in the trailer.
func (sec *StandardEncryptor) ID() []byte {
	return sec.id
}

// AsDict returns the encryption dictionary for the trailer.
// The dictionary must be written without encryption.
func (sec *StandardEncryptor) AsDict(ver Version) (Dict, error) {
	dict := Dict{
		"Filter": Name("Standard"),
		"R":      Integer(sec.R),
		"O":      String(sec.o),
		"U":      String(sec.u),
		"P":      Integer(int32(sec.p)),
	}

	switch sec.cipher {
	case CipherRC4:
		if ver < V1_4 {
			return nil, &VersionError{Operation: "RC4-128 encryption", Earliest: V1_4}
		}
		dict["V"] = Integer(2)
		dict["Length"] = Integer(128)
	case CipherAES128:
		if ver < V1_6 {
			return nil, &VersionError{Operation: "AES-128 encryption", Earliest: V1_6}
		}
		dict["V"] = Integer(4)
		dict["StmF"] = Name("StdCF")
		dict["StrF"] = Name("StdCF")
		dict["CF"] = Dict{
			"StdCF": Dict{"Length": Integer(16), "CFM": Name("AESV2")},
		}
	case CipherAES256:
		if ver < V2_0 {
			return nil, &VersionError{Operation: "AES-256 encryption", Earliest: V2_0}
		}
		dict["V"] = Integer(5)
		dict["Length"] = Integer(256)
		dict["StmF"] = Name("StdCF")
		dict["StrF"] = Name("StdCF")
		dict["CF"] = Dict{
			"StdCF": Dict{"Length": Integer(32), "CFM": Name("AESV3")},
		}
		dict["OE"] = String(sec.oe)
		dict["UE"] = String(sec.ue)
		dict["Perms"] = String(sec.perms)
	}

	return dict, nil
}

// EncryptBytes encrypts the bytes in buf using Algorithm 1 (RC4, AES-128)
// or Algorithm 1.A (AES-256) of the PDF specification.
// This implements the [Encryptor] interface.
func (sec *StandardEncryptor) EncryptBytes(ref Reference, buf []byte) ([]byte, error) {
	key := sec.keyForRef(ref)

	switch sec.cipher {
	case CipherRC4:
		c, err := rc4.NewCipher(key)
		if err != nil {
			return nil, err
		}
		c.XORKeyStream(buf, buf)
		return buf, nil
	case CipherAES128, CipherAES256:
		n := len(buf)
		nPad := 16 - n%16
		out := make([]byte, 16+n+nPad) // iv | c(data|padding)

		iv := out[:16]
		_, err := io.ReadFull(sec.rand, iv)
		if err != nil {
			return nil, err
		}

		body := out[16:]
		copy(body, buf)
		for i := n; i < len(body); i++ {
			body[i] = byte(nPad)
		}

		c, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		cipher.NewCBCEncrypter(c, iv).CryptBlocks(body, body)
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported cipher %s", sec.cipher)
	}
}

// keyForRef returns the encryption key for the object ref.
func (sec *StandardEncryptor) keyForRef(ref Reference) []byte {
	if sec.R >= 5 {
		return sec.key
	}

	h := md5.New()
	h.Write(sec.key)
	num := ref.Number()
	gen := ref.Generation()
	h.Write([]byte{
		byte(num), byte(num >> 8), byte(num >> 16),
		byte(gen), byte(gen >> 8)})
	if sec.cipher == CipherAES128 {
		h.Write([]byte("sAlT"))
	}
	l := min(sec.keyBytes+5, 16)
	return h.Sum(nil)[:l]
}

// Algorithm 2: compute the file encryption key for R <= 4.
func (sec *StandardEncryptor) computeFileEncryptionKey(paddedUserPwd []byte) []byte {
	h := md5.New()
	h.Write(paddedUserPwd)
	h.Write(sec.o)
	h.Write([]byte{
		byte(sec.p), byte(sec.p >> 8), byte(sec.p >> 16), byte(sec.p >> 24)})
	h.Write(sec.id)
	key := h.Sum(nil)

	for range 50 {
		h.Reset()
		h.Write(key[:sec.keyBytes])
		key = h.Sum(key[:0])
	}

	return key[:sec.keyBytes]
}

// Algorithm 3: compute O for R <= 4.
func (sec *StandardEncryptor) computeO(paddedUserPwd, paddedOwnerPwd []byte) []byte {
	h := md5.New()
	h.Write(paddedOwnerPwd)
	sum := h.Sum(nil)
	for range 50 {
		h.Reset()
		h.Write(sum[:sec.keyBytes])
		sum = h.Sum(sum[:0])
	}
	rc4key := sum[:sec.keyBytes]

	c, _ := rc4.NewCipher(rc4key)
	O := make([]byte, 32)
	c.XORKeyStream(O, paddedUserPwd)
	key := make([]byte, len(rc4key))
	for i := byte(1); i <= 19; i++ {
		for j := range key {
			key[j] = rc4key[j] ^ i
		}
		c, _ = rc4.NewCipher(key)
		c.XORKeyStream(O, O)
	}
	return O
}

// Algorithm 5: compute U for R = 3 and R = 4.
func (sec *StandardEncryptor) computeU(fileEncryptionKey []byte) []byte {
	h := md5.New()
	h.Write(passwdPad)
	h.Write(sec.id)
	U := h.Sum(nil)
	c, _ := rc4.NewCipher(fileEncryptionKey)
	c.XORKeyStream(U, U)

	tmpKey := make([]byte, len(fileEncryptionKey))
	for i := byte(1); i <= 19; i++ {
		for j := range tmpKey {
			tmpKey[j] = fileEncryptionKey[j] ^ i
		}
		c, _ = rc4.NewCipher(tmpKey)
		c.XORKeyStream(U, U)
	}

	// The first 16 bytes of U are significant, the remaining 16 bytes
	// are arbitrary padding.
	return append(U[:16], zero16...)
}

// Algorithm 2.B: computing a hash (revision 6)
func slowHash(passwd, salt, U []byte) []byte {
	h := sha256.New()
	h.Write(passwd)
	h.Write(salt)
	h.Write(U)
	K := h.Sum(nil)

	K1 := make([]byte, 0, 64*(len(passwd)+64+len(U)))
	for i := 0; i < 64 || K1[len(K1)-1] > byte(i-32); i++ {
		K1 = K1[:0]
		for range 64 {
			K1 = append(K1, passwd...)
			K1 = append(K1, K...)
			K1 = append(K1, U...)
		}

		c, _ := aes.NewCipher(K[:16])
		cbc := cipher.NewCBCEncrypter(c, K[16:32])
		cbc.CryptBlocks(K1, K1) // len(K1) is a multiple of 64

		// (a*256)%3 == a%3, so the remainder of the big-endian integer
		// equals the remainder of the byte sum.
		var rem int
		for _, b := range K1[:16] {
			rem += int(b)
		}
		var h hash.Hash
		switch rem % 3 {
		case 0:
			h = sha256.New()
		case 1:
			h = sha512.New384()
		case 2:
			h = sha512.New()
		}
		h.Write(K1)
		K = h.Sum(K[:0])
	}

	return K[:32]
}

// Algorithm 8: computing U and UE (revision 6)
func (sec *StandardEncryptor) computeUAndUE(utf8UserPwd []byte) ([]byte, []byte, error) {
	salt := make([]byte, 16)
	_, err := io.ReadFull(sec.rand, salt)
	if err != nil {
		return nil, nil, err
	}

	U := make([]byte, 0, 48)
	U = append(U, slowHash(utf8UserPwd, salt[:8], nil)...) // validation salt
	U = append(U, salt...)

	key := slowHash(utf8UserPwd, salt[8:], nil) // key salt
	c, _ := aes.NewCipher(key)
	UE := make([]byte, 32)
	cipher.NewCBCEncrypter(c, zero16).CryptBlocks(UE, sec.key)

	return U, UE, nil
}

// Algorithm 9: computing O and OE (revision 6)
func (sec *StandardEncryptor) computeOAndOE(utf8OwnerPwd []byte) ([]byte, []byte, error) {
	salt := make([]byte, 16)
	_, err := io.ReadFull(sec.rand, salt)
	if err != nil {
		return nil, nil, err
	}

	O := make([]byte, 0, 48)
	O = append(O, slowHash(utf8OwnerPwd, salt[:8], sec.u)...)
	O = append(O, salt...)

	key := slowHash(utf8OwnerPwd, salt[8:], sec.u)
	c, _ := aes.NewCipher(key)
	OE := make([]byte, 32)
	cipher.NewCBCEncrypter(c, zero16).CryptBlocks(OE, sec.key)

	return O, OE, nil
}

// Algorithm 10: computing the Perms value (revision 6)
func (sec *StandardEncryptor) computePerms() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf, sec.p)
	buf[4] = 0xFF
	buf[5] = 0xFF
	buf[6] = 0xFF
	buf[7] = 0xFF
	buf[8] = 'T' // metadata is encrypted
	buf[9] = 'a'
	buf[10] = 'd'
	buf[11] = 'b'

	c, _ := aes.NewCipher(sec.key)
	c.Encrypt(buf, buf)
	return buf
}

func utf8Passwd(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, errInvalidPassword
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}

// padPasswd returns the password padded to 32 bytes.  Only passwords
// consisting of printable ASCII characters are supported.
func padPasswd(passwd string) ([]byte, error) {
	if !isPlainText(passwd) {
		return nil, errInvalidPassword
	}

	padded := make([]byte, 32)
	n := copy(padded, passwd)
	copy(padded[n:], passwdPad)
	return padded, nil
}

var errInvalidPassword = errors.New("invalid password")

var passwdPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

var zero16 = make([]byte, 16)

// Perm describes which operations are permitted when accessing the document
// with User access (but not Owner access).  The user can always view the
// document.
type Perm int

const (
	// PermCopy allows to extract text and graphics.
	PermCopy Perm = 1 << iota

	// PermPrintDegraded allows printing of a low-level representation of the
	// appearance, possibly of degraded quality.
	PermPrintDegraded

	// PermPrint allows printing a faithful representation of the document.
	// This implies PermPrintDegraded.
	PermPrint

	// PermForms allows to fill in form fields, including signature fields.
	PermForms

	// PermAnnotate allows to add or modify annotations.
	// This implies PermForms.
	PermAnnotate

	// PermAssemble allows to insert, rotate, or delete pages and to create
	// bookmarks or thumbnail images.
	PermAssemble

	// PermModify allows to modify the document.  This implies PermAssemble.
	PermModify

	permNext

	// PermAll gives the user all permissions.
	PermAll = permNext - 1
)

func stdSecPermToP(perm Perm) uint32 {
	forbidden := uint32(3)
	if perm&PermCopy == 0 {
		forbidden |= 1 << (5 - 1)
	}
	if perm&PermPrint == 0 {
		forbidden |= 1 << (12 - 1)
		if perm&PermPrintDegraded == 0 {
			forbidden |= 1 << (3 - 1)
		}
	}
	if perm&PermAnnotate == 0 {
		forbidden |= 1 << (6 - 1)
		if perm&PermForms == 0 {
			forbidden |= 1 << (9 - 1)
		}
	}
	if perm&PermAssemble == 0 {
		forbidden |= 1 << (11 - 1)
	}
	if perm&PermModify == 0 {
		forbidden |= 1 << (4 - 1)
	}
	return ^forbidden
}
