package main

import "blog/web"

func main() {
	web.RunApp()
}
