package functions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gravitl/netmaker/logger"
	"github.com/kr/pretty"
)

// Long switches PrettyPrint to go syntax output
var Long bool

// bodied is implemented by payloads that keep the response body
type bodied interface {
	Body() json.RawMessage
}

// PrettyPrint - print JSON with indentation. Payloads decoded from a
// response are printed from the body as received.
func PrettyPrint(data any) {
	if Long {
		pretty.Println(data)
		return
	}
	if b, ok := data.(bodied); ok && len(b.Body()) > 0 {
		var out bytes.Buffer
		if err := json.Indent(&out, b.Body(), "", "  "); err == nil {
			fmt.Println(out.String())
			return
		}
	}
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Log(0, "Error parsing to JSON: ", err.Error())
	}
	fmt.Println(string(body))
}
