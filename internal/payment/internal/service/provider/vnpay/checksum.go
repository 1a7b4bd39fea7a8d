// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vnpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// checksum 签名内容是 secret 加上用竖线拼接的字段，字段顺序由 VNPAY 规定
func checksum(secret string, fields ...string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(secret + strings.Join(fields, "|")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret string, sum string, fields ...string) bool {
	expected := checksum(secret, fields...)
	return hmac.Equal([]byte(expected), []byte(sum))
}
