package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	addressPrefix = "0x"
	addressLength = len(addressPrefix) + 2*common.AddressLength // 42
)

// ErrInvalidAddress is returned when a string is not a usable contract address.
var ErrInvalidAddress = errors.New("invalid address")

// CheckValidAddress checks only the structure of the address: 42 characters,
// "0x" prefix and hex digits after it. The input is returned unchanged.
func CheckValidAddress(raw string) (string, error) {
	if err := checkStructure(raw); err != nil {
		return "", err
	}
	return raw, nil
}

// ValidateAndParseAddress checks the structure of the address and its EIP-55
// checksum, and returns the checksummed form.
// Адреса целиком в нижнем или верхнем регистре контрольной суммы не несут и принимаются.
func ValidateAndParseAddress(raw string) (string, error) {
	if err := checkStructure(raw); err != nil {
		return "", err
	}

	checksummed := common.HexToAddress(raw).Hex()
	if isMixedCase(raw[len(addressPrefix):]) && raw != checksummed {
		return "", fmt.Errorf("%w: %s: bad checksum", ErrInvalidAddress, raw)
	}
	return checksummed, nil
}

func checkStructure(raw string) error {
	if len(raw) != addressLength {
		return fmt.Errorf("%w: %s: expected %d characters, got %d", ErrInvalidAddress, raw, addressLength, len(raw))
	}
	if !strings.HasPrefix(raw, addressPrefix) {
		return fmt.Errorf("%w: %s: missing %s prefix", ErrInvalidAddress, raw, addressPrefix)
	}
	if !common.IsHexAddress(raw) {
		return fmt.Errorf("%w: %s: non-hex characters", ErrInvalidAddress, raw)
	}
	return nil
}

func isMixedCase(hexBody string) bool {
	return strings.ToLower(hexBody) != hexBody && strings.ToUpper(hexBody) != hexBody
}
