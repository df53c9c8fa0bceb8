package pkcs12

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

var ErrMissingCertificate = errors.New("arquivo PKCS12 sem certificado")

// ToPEM converte um certificado PKCS12 para blocos PEM
func ToPEM(pfxData []byte, password string) ([]*pem.Block, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block
	if certificate != nil {
		blocks = append(blocks, &pem.Block{Type: "CERTIFICATE", Bytes: certificate.Raw})
	}
	for _, cert := range caCerts {
		blocks = append(blocks, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	}
	if privateKey != nil {
		pkData, err := x509.MarshalPKCS8PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &pem.Block{Type: "PRIVATE KEY", Bytes: pkData})
	}

	return blocks, nil
}

// TLSCertificate monta o certificado do servidor HTTPS a partir de um PKCS12
func TLSCertificate(pfxData []byte, password string) (tls.Certificate, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao decodificar PKCS12: %w", err)
	}
	if certificate == nil {
		return tls.Certificate{}, ErrMissingCertificate
	}

	chain := [][]byte{certificate.Raw}
	for _, ca := range caCerts {
		chain = append(chain, ca.Raw)
	}

	return tls.Certificate{
		Certificate: chain,
		PrivateKey:  privateKey,
		Leaf:        certificate,
	}, nil
}

// LoadTLSConfig lê o arquivo .p12 e retorna a configuração TLS do servidor
func LoadTLSConfig(path, password string) (*tls.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler certificado %s: %w", path, err)
	}

	cert, err := TLSCertificate(data, password)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
