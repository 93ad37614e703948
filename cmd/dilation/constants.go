package main

// Valid output modes for commands that render results.
var validOutputs = []string{"text", "json"}

// Valid scenario file formats.
var validFormats = []string{"json", "csv", "auto"}
