package main

import (
	"github.com/joho/godotenv"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/cmd/cvmatch"
)

func main() {
	_ = godotenv.Load()
	cvmatch.Execute()
}
