package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

// ListEntities fetches one page of the Pokémon list.
func (c *Client) ListEntities(ctx context.Context, limit, offset int) (*catalog.EntityPage, error) {
	return c.list(ctx, "pokemon", limit, offset)
}

// ListSpecies fetches one page of the species list.
func (c *Client) ListSpecies(ctx context.Context, limit, offset int) (*catalog.EntityPage, error) {
	return c.list(ctx, "pokemon-species", limit, offset)
}

func (c *Client) list(ctx context.Context, resource string, limit, offset int) (*catalog.EntityPage, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0 (got %d)", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must be >= 0 (got %d)", offset)
	}

	query := url.Values{
		"limit":  []string{strconv.Itoa(limit)},
		"offset": []string{strconv.Itoa(offset)},
	}

	var resp listResponse
	if err := c.getJSON(ctx, c.resolve(resource, query), &resp); err != nil {
		return nil, err
	}
	return resp.page(), nil
}

// GetEntityDetail fetches a Pokémon by name or numeric id (case-insensitive).
func (c *Client) GetEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error) {
	id, err := identifier(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp pokemonResponse
	if err := c.getJSON(ctx, c.resolve("pokemon/"+url.PathEscape(id), nil), &resp); err != nil {
		return nil, err
	}
	return resp.detail(), nil
}

// ResolveEntityDetail is GetEntityDetail for names taken from the species
// catalog. When no Pokémon carries the name (deoxys, giratina, ...), it loads
// the species' default variety, whose id equals the species id. The original
// not-found error is returned when the species is unknown too.
func (c *Client) ResolveEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error) {
	detail, err := c.GetEntityDetail(ctx, nameOrID)
	if err == nil || !IsNotFound(err) {
		return detail, err
	}

	species, serr := c.GetSpecies(ctx, nameOrID)
	if serr != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("name", nameOrID).
		Int("species_id", int(species.ID)).
		Msg("Resolved species to its default variety")

	return c.GetEntityDetail(ctx, species.ID.String())
}

// GetEntitiesByType returns every Pokémon carrying the given type. Each
// summary keeps its id-bearing reference URL.
func (c *Client) GetEntitiesByType(ctx context.Context, tag catalog.TypeTag) ([]catalog.EntitySummary, error) {
	resp, err := c.getType(ctx, tag)
	if err != nil {
		return nil, err
	}
	return resp.members(), nil
}

// GetDamageRelations returns the defensive damage relations of a type.
func (c *Client) GetDamageRelations(ctx context.Context, tag catalog.TypeTag) (*catalog.DamageRelations, error) {
	resp, err := c.getType(ctx, tag)
	if err != nil {
		return nil, err
	}
	return resp.relations(), nil
}

func (c *Client) getType(ctx context.Context, tag catalog.TypeTag) (*typeResponse, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("unknown type %q", tag)
	}

	var resp typeResponse
	if err := c.getJSON(ctx, c.resolve("type/"+string(tag), nil), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEntitiesByGeneration returns the species introduced in a generation.
// References point at pokemon-species resources.
func (c *Client) GetEntitiesByGeneration(ctx context.Context, tag catalog.GenerationTag) ([]catalog.EntitySummary, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("unknown generation %q", tag)
	}

	var resp generationResponse
	if err := c.getJSON(ctx, c.resolve("generation/"+string(tag), nil), &resp); err != nil {
		return nil, err
	}
	return resp.members(), nil
}

// GetSpecies fetches a species by name or numeric id.
func (c *Client) GetSpecies(ctx context.Context, nameOrID string) (*catalog.Species, error) {
	id, err := identifier(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp speciesResponse
	if err := c.getJSON(ctx, c.resolve("pokemon-species/"+url.PathEscape(id), nil), &resp); err != nil {
		return nil, err
	}
	return resp.species(), nil
}

// GetEvolutionChain fetches an evolution chain given either its absolute
// reference URL (as found on a species) or its numeric id.
func (c *Client) GetEvolutionChain(ctx context.Context, ref string) (*catalog.EvolutionChain, error) {
	target, err := c.chainURL(ref)
	if err != nil {
		return nil, err
	}

	var resp evolutionChainResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}
	return &catalog.EvolutionChain{
		ID:    catalog.EntityID(resp.ID),
		Chain: resp.Chain.link(),
	}, nil
}

func (c *Client) chainURL(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty evolution chain reference")
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n <= 0 {
			return "", fmt.Errorf("evolution chain id must be positive (got %d)", n)
		}
		return c.resolve("evolution-chain/"+ref, nil), nil
	}

	u, err := url.Parse(ref)
	if err != nil || !u.IsAbs() {
		return "", fmt.Errorf("invalid evolution chain reference %q", ref)
	}
	return ref, nil
}

func identifier(nameOrID string) (string, error) {
	id := catalog.NormalizeIdentifier(nameOrID)
	if id == "" {
		return "", fmt.Errorf("empty name or id")
	}
	return id, nil
}
