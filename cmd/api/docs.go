package main

// @title Holonet Favorites API
// @version 1.0
// @description Star Wars catalog with per-user favorite planets and characters
// @host localhost:3000
// @BasePath /
