// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/artfolio/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Administrator login",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "401": {
                        "description": ""
                    }
                },
                "description": "Checks the credentials, opens a cookie session and returns a JWT pair.",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Credentials",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/refresh": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Refresh tokens",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "401": {
                        "description": ""
                    }
                },
                "description": "Exchanges a refresh token for a new pair. The old refresh token is revoked.",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Refresh token",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "401": {
                        "description": ""
                    }
                },
                "description": "Revokes every refresh token of the caller and clears the session cookie.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/admin/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current administrator",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "401": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/blog": {
            "get": {
                "tags": [
                    "blog"
                ],
                "summary": "List blog posts",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "description": "Newest first, optionally narrowed by tag slug.",
                "parameters": [
                    {
                        "name": "tag",
                        "in": "query",
                        "required": false,
                        "description": "Tag slug",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page",
                        "type": "integer"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "required": false,
                        "description": "Items per page",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/v1/blog/{slug}": {
            "get": {
                "tags": [
                    "blog"
                ],
                "summary": "Blog post detail",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "description": "Post slug",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/blog/tags": {
            "get": {
                "tags": [
                    "blog"
                ],
                "summary": "Blog tag cloud",
                "responses": {
                    "200": {
                        "description": ""
                    }
                }
            }
        },
        "/api/v1/admin/posts": {
            "post": {
                "tags": [
                    "admin-blog"
                ],
                "summary": "Create blog post",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "The caller becomes the author. The post is published immediately.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Post",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/posts/{id}": {
            "get": {
                "tags": [
                    "admin-blog"
                ],
                "summary": "Blog post by id",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Post ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "tags": [
                    "admin-blog"
                ],
                "summary": "Update blog post",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "Author and publication time never change.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Post ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-blog"
                ],
                "summary": "Delete blog post",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Post ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/posts/{id}/tags": {
            "post": {
                "tags": [
                    "admin-blog"
                ],
                "summary": "Add tags to a post",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Post ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Tag names",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/gallery/categories": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "List gallery categories",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Every category with its artwork count, ordered by name."
            }
        },
        "/api/v1/gallery/categories/{slug}": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "Category page",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "description": "The category and a page of its artworks, newest first.",
                "parameters": [
                    {
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "description": "Category slug",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page",
                        "type": "integer"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "required": false,
                        "description": "Items per page",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/v1/gallery/artworks": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "List artworks",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "description": "Artworks newest first, optionally narrowed by category and tag slug.",
                "parameters": [
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Category slug",
                        "type": "string"
                    },
                    {
                        "name": "tag",
                        "in": "query",
                        "required": false,
                        "description": "Tag slug",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page",
                        "type": "integer"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "required": false,
                        "description": "Items per page",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/v1/gallery/artworks/{slug}": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "Artwork detail",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "description": "Artwork slug",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/gallery/tags": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "Artwork tag cloud",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Tags used by at least one artwork, with usage counts."
            }
        },
        "/api/v1/admin/categories": {
            "post": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Create category",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "The slug is derived from the name when omitted.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Category",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/categories/{id}": {
            "put": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Update category",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Category ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Delete category",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "Refused with 409 while artworks still reference the category.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Category ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/artworks": {
            "post": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Create artwork",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Artwork",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/artworks/{id}": {
            "get": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Artwork by id",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Update artwork",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "Only present fields change. Tags, when present, replace the set.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Delete artwork",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "description": "Removes the artwork with its additional images, tag links and homepage placements.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/artworks/{id}/images": {
            "get": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Additional images of an artwork",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Attach an additional image",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "At most five additional images per artwork.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Image",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/artworks/{id}/images/{image_id}": {
            "delete": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Detach an additional image",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    },
                    {
                        "name": "image_id",
                        "in": "path",
                        "required": true,
                        "description": "Image ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/artworks/{id}/tags": {
            "post": {
                "tags": [
                    "admin-gallery"
                ],
                "summary": "Add tags to an artwork",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "description": "Unknown tags are created. Existing links are kept.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Artwork ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Tag names",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/homepage": {
            "get": {
                "tags": [
                    "homepage"
                ],
                "summary": "Homepage content",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Active hero slides and up to three active featured artworks, in display order."
            }
        },
        "/api/v1/social-links": {
            "get": {
                "tags": [
                    "homepage"
                ],
                "summary": "Active social links",
                "responses": {
                    "200": {
                        "description": ""
                    }
                }
            }
        },
        "/api/v1/admin/social-links": {
            "get": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "All social links",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Inactive links included.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Create social link",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Link",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/hero-slides": {
            "get": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "List hero slides",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Inactive entries included, in display order.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Create hero slide",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Slide",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/hero-slides/{id}": {
            "put": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Update hero slide",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Delete hero slide",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/featured": {
            "get": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "List featured artworks",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "description": "Inactive entries included, in display order.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Create featured artwork",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Placement",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/featured/{id}": {
            "put": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Update featured artwork",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Delete featured artwork",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/social-links/{id}": {
            "put": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Update social link",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Changed fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-homepage"
                ],
                "summary": "Delete social link",
                "responses": {
                    "204": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/imports": {
            "post": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "Stage external posts for review",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "description": "Items whose external post id was already imported are reported as skipped.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Items",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "List import items",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "pending_review, processed or ignored",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page",
                        "type": "integer"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "required": false,
                        "description": "Items per page",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/v1/admin/imports/{id}": {
            "get": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "Import item",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Item ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/imports/{id}/promote": {
            "post": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "Promote an item to an artwork",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    },
                    "502": {
                        "description": ""
                    }
                },
                "description": "Only pending items can be promoted. The item is marked processed and linked to the new artwork.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Item ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Artwork fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/imports/ignore": {
            "post": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "Ignore pending items",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "description": "Items that are not pending are left alone and not counted.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Item IDs",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/imports/reset": {
            "post": {
                "tags": [
                    "admin-imports"
                ],
                "summary": "Return items to review",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "description": "Processed and ignored items go back to pending review and lose their artwork link.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Item IDs",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/admin/images": {
            "post": {
                "tags": [
                    "admin-media"
                ],
                "summary": "Upload an image",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "413": {
                        "description": ""
                    },
                    "415": {
                        "description": ""
                    }
                },
                "description": "Stores a JPEG, PNG, GIF or WebP image and returns its public URL.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Image",
                        "type": "file"
                    }
                ]
            }
        },
        "/api/v1/subscribe": {
            "post": {
                "tags": [
                    "subscription"
                ],
                "summary": "Subscribe to the newsletter",
                "responses": {
                    "201": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    },
                    "409": {
                        "description": ""
                    }
                },
                "description": "Records an inactive subscriber and mails a confirmation link.",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Email",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/v1/subscribe/confirm/{token}": {
            "get": {
                "tags": [
                    "subscription"
                ],
                "summary": "Confirm a subscription",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "description": "Confirmation token",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/subscribe/unsubscribe/{token}": {
            "get": {
                "tags": [
                    "subscription"
                ],
                "summary": "Unsubscribe",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "404": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "description": "Unsubscribe token",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/admin/subscribers": {
            "get": {
                "tags": [
                    "admin-subscription"
                ],
                "summary": "List subscribers",
                "responses": {
                    "200": {
                        "description": ""
                    },
                    "400": {
                        "description": ""
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "active",
                        "in": "query",
                        "required": false,
                        "description": "true or false",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page",
                        "type": "integer"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "required": false,
                        "description": "Items per page",
                        "type": "integer"
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Artfolio API",
	Description:      "Portfolio, blog and newsletter backend for a single artist.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
