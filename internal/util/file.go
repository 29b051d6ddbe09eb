package util

import (
	"io"
	"net/http"
	"strings"
)

// IsPDF 通过魔数判断是否为PDF文件
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// HasPDFExtension 按文件名后缀判断（大小写不敏感）
func HasPDFExtension(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// DetectMimeType 读取前512字节做内容嗅探
func DetectMimeType(reader io.Reader) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}
