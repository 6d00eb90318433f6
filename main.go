package main

import (
	"github.com/shouni/gemini-fashion-kit/cmd"
)

// main はコマンドライン引数の解析と実行を cmd パッケージに委ねます。
func main() {
	cmd.Execute()
}
